package golay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var GolayRun = func(cmd *cobra.Command, args []string) {
	bs, err := Marshal()
	if err != nil {
		fmt.Println(err)
		return
	}

	err = os.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
		return
	}
	logrus.Debugf("wrote the golay linearblock to %v", args[0])
}

// Marshal returns the JSON of the golay code's linearblock.
func Marshal() ([]byte, error) {
	code, err := golay.New()
	if err != nil {
		return nil, fmt.Errorf("unable to create the golay code: %w", err)
	}

	bs, err := json.Marshal(code.Block)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize the golay code: %w", err)
	}
	return bs, nil
}
