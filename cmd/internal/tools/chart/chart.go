package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var OutputFile string
var MessageError bool
var ParityError bool
var DecodingFailure bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
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

	err = Render(f, viper.GetString("chart-title"), args, stats, tools.SelectMetric(MessageError, ParityError, DecodingFailure))
	if err != nil {
		fmt.Println(err)
	}
}

// Render draws a bar chart with one series per results file.
func Render(w io.Writer, title string, names []string, stats []*tools.SimulationStats, metric tools.Metric) error {
	xvalues := tools.Parameters(stats)
	xnames := make([]string, len(xvalues))
	for i, x := range xvalues {
		xnames[i] = fmt.Sprint(x)
	}

	// create a new bar instance
	bar := charts.NewBar()
	// set some global options like Title/Legend/ToolTip or anything else
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Error Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	// Put data into instance
	for i, s := range stats {
		bar.AddSeries(names[i], series(s, xvalues, metric))
	}

	return bar.Render(w)
}

func series(stat *tools.SimulationStats, values []float64, metric tools.Metric) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {

		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: metric(x),
		}
	}
	return results
}
