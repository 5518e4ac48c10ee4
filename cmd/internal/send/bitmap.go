package send

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/nathanhack/golay/framing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var BitmapRun = func(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error while reading file %v: %v\n", args[0], err)
		return
	}

	bmp, err := framing.ParseBitmap(data)
	if err != nil {
		fmt.Println(err)
		return
	}

	t, err := NewTransmitter()
	if err != nil {
		fmt.Println(err)
		return
	}

	prefix := viper.GetString("output")
	if prefix == "" {
		prefix = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}

	bar := pb.StartNew(2 * len(bmp.Pixels))
	t.Progress = func() { bar.Increment() }

	ctx := config.SignalContext()
	coded, codedReport, err := t.SendBitmap(ctx, data)
	if err != nil {
		bar.Finish()
		fmt.Println(err)
		return
	}

	uncoded, uncodedReport, err := t.SendBitmapUncoded(ctx, data)
	bar.Finish()
	if err != nil {
		fmt.Println(err)
		return
	}

	outputs := []struct {
		name   string
		data   []byte
		report framing.Report
	}{
		{"golay", coded, codedReport},
		{"uncoded", uncoded, uncodedReport},
	}
	for _, o := range outputs {
		filename := fmt.Sprintf("%v-%v.bmp", prefix, o.name)
		err = os.WriteFile(filename, o.data, 0644)
		if err != nil {
			fmt.Println("unable to write file: ", err)
			return
		}
		fmt.Println(FormatReport(o.name, o.report), "->", filename)
	}
}
