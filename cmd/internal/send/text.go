package send

import (
	"fmt"

	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/spf13/cobra"
)

var TextRun = func(cmd *cobra.Command, args []string) {
	t, err := NewTransmitter()
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx := config.SignalContext()
	coded, codedReport, err := t.SendText(ctx, args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	uncoded, uncodedReport, err := t.SendTextUncoded(ctx, args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("sent:    %q\n", args[0])
	fmt.Printf("golay:   %q\n", coded)
	fmt.Printf("uncoded: %q\n", uncoded)
	fmt.Println(FormatReport("golay", codedReport))
	fmt.Println(FormatReport("uncoded", uncodedReport))
}
