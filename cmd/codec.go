package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/codec"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode MESSAGE_BITS",
	Aliases: []string{"e"},
	Short:   "Encodes a 12 bit message",
	Long:    `Encodes a 12 bit message, given as a string of 0s and 1s, into a 23 bit codeword.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD_BITS",
	Aliases: []string{"d"},
	Short:   "Decodes a 23 bit received word",
	Long:    `Decodes a 23 bit received word, correcting up to three errors, and prints the 12 bit message.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.DecodeRun,
}

// transmitCmd represents the transmit command
var transmitCmd = &cobra.Command{
	Use:   "transmit MESSAGE_BITS",
	Short: "Encodes, sends through a binary symmetric channel and decodes a message",
	Long:  `Encodes a 12 bit message, flips each codeword bit with the given probability and decodes the received word.`,
	Args:  cobra.ExactArgs(1),
	Run:   codec.TransmitRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(transmitCmd)

	transmitCmd.Flags().Float64P("probability", "p", 0.05, "probability of each bit being flipped [0, 1]")
}
