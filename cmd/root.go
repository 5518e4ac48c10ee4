package cmd

import (
	"fmt"
	"os"

	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "golay",
	Short: "Golay (23,12) error correcting code",
	Long: `golay encodes 12 bit messages into 23 bit codewords, sends them through a
simulated binary symmetric channel and decodes them again, correcting up to
three flipped bits per codeword.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(cmd.Flags(), cfgFile)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose info")
	rootCmd.PersistentFlags().String("log-file", "", "also write the log as JSON to this file")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for the random number generator (0 means seed from the clock)")
	rootCmd.PersistentFlags().Int("threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
}
