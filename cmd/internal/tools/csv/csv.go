package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool
var DecodingFailure bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Write(f, args, stats, tools.SelectMetric(MessageError, ParityError, DecodingFailure))
	if err != nil {
		fmt.Println(err)
	}
}

// Write writes one row per results file and one column per channel parameter,
// parameters missing from a file are left empty.
func Write(out io.Writer, files []string, stats []*tools.SimulationStats, metric tools.Metric) error {
	w := csv.NewWriter(out)

	//first write headers
	parameters := tools.Parameters(stats)
	header := []string{"Results File"}
	for _, p := range parameters {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(files[i], filepath.Ext(files[i]))

		for j, p := range parameters {
			v, has := s.Stats[p]
			if has {
				record[j+1] = fmt.Sprintf("%v", metric(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
