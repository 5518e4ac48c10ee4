package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/create/golay"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to save an ECC",
	Long:    `create saves a built-in ECC as JSON so it can be used later by the tools.`,
}

// createGolayCmd represents the golay command
var createGolayCmd = &cobra.Command{
	Use:     "golay OUTPUT_JSON",
	Aliases: []string{"g"},
	Short:   "Saves the Golay (23,12) code",
	Long:    `Saves the H matrix and systematic generator of the Golay (23,12) code as a linearblock JSON.`,
	Args:    cobra.ExactArgs(1),
	Run:     golay.GolayRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createGolayCmd)
}
