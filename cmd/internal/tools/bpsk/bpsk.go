package bpsk

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nathanhack/golay/benchmarking"
	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var BPSKRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.NewCode()
	if err != nil {
		fmt.Println(err)
		return
	}

	parameters, err := tools.ParseParameters(viper.GetStringSlice("ebn0"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range parameters {
		if p <= 0 {
			fmt.Printf("E_b/N_0 must be > 0 but found %v\n", p)
			return
		}
	}

	data, err := tools.LoadOrCreateResults(args[0], TypeInfo(), tools.Md5Sum(code.Block.H))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx := config.SignalContext()
	tools.RunSimulation(ctx, data, parameters, viper.GetInt("trials"), config.Threads(), args[0], Trial(code))
}

func TypeInfo() string {
	t := reflect.TypeOf(golay.Decoder{})
	return fmt.Sprintf("BPSK:%v/%v", t.PkgPath(), t.Name())
}

// Trial modulates every codeword with BPSK, adds gaussian noise at E_b/N_0 and hard decides it.
func Trial(code *tools.Code) tools.Trial {
	return func(ctx context.Context, E_bPerN_0 float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return code.Run(ctx, trials, threads, benchmarking.BPSKChannel(E_bPerN_0), previousStats, checkpoints)
	}
}
