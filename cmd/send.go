package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/send"
	"github.com/spf13/cobra"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:     "send",
	Aliases: []string{"s"},
	Short:   "Sends data through a noisy channel",
	Long: `Sends data one byte per codeword through a binary symmetric channel, once
protected by the golay code and once uncoded, so the two can be compared.`,
}

// sendTextCmd represents the text command
var sendTextCmd = &cobra.Command{
	Use:     "text TEXT",
	Aliases: []string{"t"},
	Short:   "Sends a string",
	Long:    `Sends the UTF-8 bytes of TEXT and prints what arrived.`,
	Args:    cobra.ExactArgs(1),
	Run:     send.TextRun,
}

// sendBitmapCmd represents the bitmap command
var sendBitmapCmd = &cobra.Command{
	Use:     "bitmap INPUT_BMP",
	Aliases: []string{"b", "bmp"},
	Short:   "Sends the pixels of a BMP image",
	Long: `Sends the pixel data of a BMP image, the headers are kept as is, and writes
PREFIX-golay.bmp and PREFIX-uncoded.bmp.`,
	Args: cobra.ExactArgs(1),
	Run:  send.BitmapRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.PersistentFlags().Float64P("probability", "p", 0.05, "probability of each bit being flipped [0, 1]")
	sendCmd.PersistentFlags().UintP("retries", "r", 3, "the number of retransmissions allowed for an undecodable codeword")

	sendCmd.AddCommand(sendTextCmd)

	sendCmd.AddCommand(sendBitmapCmd)
	sendBitmapCmd.Flags().StringP("output", "o", "", "prefix of the output files (defaults to INPUT_BMP without its extension)")
}
