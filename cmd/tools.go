package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/tools/bpsk"
	"github.com/nathanhack/golay/cmd/internal/tools/bsc"
	"github.com/nathanhack/golay/cmd/internal/tools/chart"
	"github.com/nathanhack/golay/cmd/internal/tools/csv"
	"github.com/nathanhack/golay/cmd/internal/tools/info"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsInfoCmd represents the info command
var toolsInfoCmd = &cobra.Command{
	Use:     "info ECC_JSON",
	Aliases: []string{"i"},
	Short:   "Describes a saved linearblock ECC",
	Long:    `Loads a saved linearblock ECC, validates G*H.T=0 and prints its parameters.`,
	Args:    cobra.ExactArgs(1),
	Run:     info.InfoRun,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for the golay code. Results are saved as they run, running again with the same RESULT_JSON continues where it stopped.`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for the golay code`,
	Args:  cobra.ExactArgs(1),
	Run:   bsc.BSCRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator with hard decisions",
	Long:  `A BPSK over additive white gaussian noise channel simulator for the golay code, each symbol is hard decided before decoding`,
	Args:  cobra.ExactArgs(1),
	Run:   bpsk.BPSKRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML bar chart",
	Long:    `Export to an HTML bar chart`,
	Args:    cobra.MinimumNArgs(1),
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsInfoCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.PersistentFlags().IntP("trials", "t", 1_000_000, "the number of trials per step")

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().StringSliceP("probability", "p", []string{"0.01", "0.05", "0.10", "0.15", "0.20", "0.25", "0.30", "0.35", "0.40", "0.45", "0.50"}, "probability of crossover errors to test [0, 1]")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().StringSliceP("ebn0", "e", []string{"0.5", "1", "2", "3", "4", "5", "6", "7", "8"}, "E_b/N_0 values (linear, not dB) to test (>0)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError")
	toolsCSVCmd.Flags().BoolVarP(&csv.DecodingFailure, "failure", "f", false, "outputs the DecodingFailure rate instead of CodewordError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.MessageError, "message", "m", false, "charts the MessageError instead of CodewordError")
	toolsChartCmd.Flags().BoolVarP(&chart.ParityError, "parity", "p", false, "charts the ParityError instead of CodewordError")
	toolsChartCmd.Flags().BoolVarP(&chart.DecodingFailure, "failure", "f", false, "charts the DecodingFailure rate instead of CodewordError")
}
