package info

import (
	"fmt"

	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var InfoRun = func(cmd *cobra.Command, args []string) {
	ecc, err := tools.LoadLinearBlockECC(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tools.Info(config.SignalContext(), ecc, config.Threads()))
}
