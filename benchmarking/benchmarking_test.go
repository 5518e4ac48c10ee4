package benchmarking

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"testing"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/channel"
	"github.com/nathanhack/golay/linearblock/golay"
)

func golayFunctions() (BinaryMessageConstructor, BinarySymmetricChannelEncoder, BinarySymmetricChannelCorrection, BinarySymmetricChannelMetrics) {
	code, _ := golay.New()

	createMessage := func(trial int) bits.Vector {
		return bits.FromUint(golay.MessageLength, uint64(trial))
	}

	encode := func(message bits.Vector) (codeword bits.Vector) {
		codeword, _ = code.Encode(message)
		return codeword
	}

	repair := func(originalCodeword, channelInducedCodeword bits.Vector) (bits.Vector, error) {
		fixed, err := code.Correct(golay.Extend(channelInducedCodeword))
		if err != nil {
			return channelInducedCodeword, err
		}
		return fixed.Slice(0, golay.CodewordLength), nil
	}

	metrics := func(originalMessage, originalCodeword, fixedChannelInducedCodeword bits.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := HammingDistance(originalCodeword, fixedChannelInducedCodeword)
		message := fixedChannelInducedCodeword.Slice(0, golay.MessageLength)
		messageErrors := HammingDistance(message, originalMessage)
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(golay.CodewordLength)
		percentFixedMessageErrors = float64(messageErrors) / float64(golay.MessageLength)
		percentFixedParityErrors = float64(parityErrors) / float64(golay.CodewordLength-golay.MessageLength)
		return
	}
	return createMessage, encode, repair, metrics
}

func ExampleBenchmarkBSC() {
	createMessage, encode, repair, metrics := golayFunctions()

	flip := func(originalCodeword bits.Vector) (erroredCodeword bits.Vector) {
		//golay can fix three bits wrong so we'll flip three bits per codeword
		return channel.FlipCount(originalCodeword, 3)
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBSC(context.Background(), 1000, 4, createMessage, encode, flip, repair, metrics, checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00), Failure:0.00}
}

func ExampleBenchmarkBSC_bpsk() {
	threads := runtime.NumCPU()
	createMessage, encode, repair, metrics := golayFunctions()

	//at 10 E_b/N_0 a hard decision is wrong about once every 250000 bits
	stats := BenchmarkBSC(context.Background(), 10_000, threads, createMessage, encode, BPSKChannel(10), repair, metrics, nil, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00), Failure:0.00}
}

func TestBenchmarkBSCContinueStats(t *testing.T) {
	createMessage, encode, repair, metrics := golayFunctions()
	flip := func(originalCodeword bits.Vector) bits.Vector {
		return channel.FlipCount(originalCodeword, 1)
	}

	checkpoints := 0
	stats := BenchmarkBSC(context.Background(), 50, 2, createMessage, encode, flip, repair, metrics, func(Stats) { checkpoints++ }, false)
	if stats.ChannelCodewordError.Count != 50 || checkpoints != 50 {
		t.Fatalf("expected 50 trials and checkpoints but found %v and %v", stats.ChannelCodewordError.Count, checkpoints)
	}

	stats = BenchmarkBSCContinueStats(context.Background(), 80, 2, createMessage, encode, flip, repair, metrics, nil, stats, false)
	if stats.ChannelCodewordError.Count != 80 {
		t.Fatalf("expected 80 trials but found %v", stats.ChannelCodewordError.Count)
	}

	//nothing left to run
	again := BenchmarkBSCContinueStats(context.Background(), 80, 2, createMessage, encode, flip, repair, metrics, nil, stats, false)
	if again.ChannelCodewordError.Count != 80 || again.ChannelCodewordError.Mean != stats.ChannelCodewordError.Mean {
		t.Fatalf("expected %v but found %v", stats, again)
	}
}

func TestBenchmarkBSCCountsFailures(t *testing.T) {
	createMessage, encode, _, metrics := golayFunctions()
	identity := func(originalCodeword bits.Vector) bits.Vector { return originalCodeword }
	repair := func(originalCodeword, channelInducedCodeword bits.Vector) (bits.Vector, error) {
		return channelInducedCodeword, golay.ErrDecodingFailure
	}

	stats := BenchmarkBSC(context.Background(), 20, 1, createMessage, encode, identity, repair, metrics, nil, false)
	if stats.DecodingFailure.Mean != 1 {
		t.Fatalf("expected a failure rate of 1 but found %v", stats.DecodingFailure.Mean)
	}
}

func TestHammingDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"101", "101", 0},
		{"101", "011", 2},
		{"101", "10111", 2},
		{"11111", "000", 5},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, _ := bits.Parse(test.a)
			b, _ := bits.Parse(test.b)
			actual := HammingDistance(a, b)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBPSKRoundTrip(t *testing.T) {
	v, _ := bits.Parse("10110011101001000001011")
	bpsk := BitsToBPSK(v)
	if bpsk.AtVec(0) != 1 || bpsk.AtVec(1) != -1 {
		t.Fatalf("expected [1,-1,...] but found [%v,%v,...]", bpsk.AtVec(0), bpsk.AtVec(1))
	}
	actual := BPSKToBits(bpsk, 0)
	if !actual.Equals(v) {
		t.Fatalf("expected %v but found %v", v, actual)
	}
	if d := HammingDistanceBPSK(bpsk, BitsToBPSK(actual)); d != 0 {
		t.Fatalf("expected 0 but found %v", d)
	}
}

func TestRandomMessageOnesCount(t *testing.T) {
	for ones := 0; ones <= 12; ones++ {
		actual := RandomMessageOnesCount(12, ones)
		if actual.HammingWeight() != ones {
			t.Fatalf("expected %v but found %v", ones, actual.HammingWeight())
		}
	}
	if RandomMessage(23).Len() != 23 {
		t.Fatalf("expected length 23")
	}
}
