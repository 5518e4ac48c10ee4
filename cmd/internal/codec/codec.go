package codec

import (
	"fmt"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/channel"
	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	code, message, ok := parse(args[0])
	if !ok {
		return
	}

	codeword, err := code.Encode(message)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(codeword)
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	code, received, ok := parse(args[0])
	if !ok {
		return
	}

	message, err := code.Decode(received)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(message)
}

var TransmitRun = func(cmd *cobra.Command, args []string) {
	code, message, ok := parse(args[0])
	if !ok {
		return
	}

	result, err := Transmit(code, message, viper.GetFloat64("probability"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(result)
}

type Result struct {
	Message  bits.Vector
	Codeword bits.Vector
	Received bits.Vector
	Decoded  bits.Vector
	Flipped  int
	Err      error
}

func (r Result) Corrected() bool {
	return r.Err == nil && r.Decoded.Equals(r.Message)
}

func (r Result) String() string {
	decoded := r.Decoded.String()
	if r.Err != nil {
		decoded = r.Err.Error()
	}
	return fmt.Sprintf("message:   %v\ncodeword:  %v\nreceived:  %v\nflipped:   %v\ndecoded:   %v\ncorrected: %v\n",
		r.Message, r.Codeword, r.Received, r.Flipped, decoded, r.Corrected())
}

// Transmit runs message through the encoder, the channel and the decoder.
// A decoding failure is part of the result, other errors are returned.
func Transmit(code *golay.Code, message bits.Vector, probability float64) (Result, error) {
	codeword, err := code.Encode(message)
	if err != nil {
		return Result{}, err
	}

	received, err := channel.Transmit(codeword, probability)
	if err != nil {
		return Result{}, err
	}

	flips, _ := codeword.Xor(received)
	result := Result{
		Message:  message,
		Codeword: codeword,
		Received: received,
		Flipped:  flips.HammingWeight(),
	}
	result.Decoded, result.Err = code.Decode(received)
	return result, nil
}

func parse(arg string) (*golay.Code, bits.Vector, bool) {
	v, err := bits.Parse(arg)
	if err != nil {
		fmt.Println(err)
		return nil, bits.Vector{}, false
	}

	code, err := golay.New()
	if err != nil {
		fmt.Println("unable to create the golay code: ", err)
		return nil, bits.Vector{}, false
	}
	return code, v, true
}
