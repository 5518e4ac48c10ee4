package bsc

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nathanhack/golay/benchmarking"
	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/channel"
	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var BSCRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.NewCode()
	if err != nil {
		fmt.Println(err)
		return
	}

	probabilities := viper.GetStringSlice("probability")
	parameters, err := tools.ParseParameters(probabilities)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range parameters {
		if _, err := channel.NewBinarySymmetric(p, 0); err != nil {
			fmt.Println(err)
			return
		}
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
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
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

// Trial sends every codeword through a binary symmetric channel with the crossover probability.
func Trial(code *tools.Code) tools.Trial {
	return func(ctx context.Context, crossoverProbability float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		bsc := func(originalCodeword bits.Vector) (erroredCodeword bits.Vector) {
			erroredCodeword, err := channel.Transmit(originalCodeword, crossoverProbability)
			if err != nil {
				panic(err)
			}
			return erroredCodeword
		}
		return code.Run(ctx, trials, threads, bsc, previousStats, checkpoints)
	}
}
