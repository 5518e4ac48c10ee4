// Package framing carries byte oriented data over the Golay code, one byte per
// 12 bit unit, and reports what the channel did to it.
package framing

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// UnitLength is the message size of the code, bytes are zero extended to it.
const UnitLength = golay.MessageLength

type Codec interface {
	Encode(message bits.Vector) (codeword bits.Vector, err error)
	Decode(received bits.Vector) (message bits.Vector, err error)
}

type Channel interface {
	Transmit(codeword bits.Vector) (channelInducedCodeword bits.Vector)
}

// ByteToUnit zero extends b to a 12 bit unit, the upper 4 bits are zero.
func ByteToUnit(b byte) bits.Vector {
	return bits.FromUint(UnitLength, uint64(b))
}

// UnitToByte returns the low 8 bits of a 12 bit unit.
func UnitToByte(unit bits.Vector) (byte, error) {
	if unit.Len() != UnitLength {
		return 0, fmt.Errorf("framing: unit requires %v bits but found %v: %w", UnitLength, unit.Len(), bits.ErrInvalidLength)
	}
	return unit.Slice(UnitLength-8, UnitLength).Byte()
}

type Report struct {
	Units            int // bytes sent
	ChannelBitErrors int // bits flipped by the channel over every attempt
	Damaged          int // units received with at least one flipped bit
	Retransmissions  int // attempts after the first
	Failed           int // units still undecodable after all retries, emitted as zero
	ByteErrors       int // output bytes that differ from the input
}

func (r *Report) add(o Report) {
	r.ChannelBitErrors += o.ChannelBitErrors
	r.Damaged += o.Damaged
	r.Retransmissions += o.Retransmissions
	r.Failed += o.Failed
}

//Transmitter sends data unit by unit. Units are independent so they are
// processed on a pool of Threads workers (<=0 means runtime.NumCPU()).
type Transmitter struct {
	Code    Codec
	Channel Channel

	// Retries is the number of retransmissions allowed after a decoding failure.
	Retries int
	Threads int

	// Progress is optional and called once per finished unit.
	Progress func()
}

func distance(a, b bits.Vector) int {
	x, err := a.Xor(b)
	if err != nil {
		panic(err)
	}
	return x.HammingWeight()
}

// sendUnit retransmits while Decode reports ErrDecodingFailure. The Golay code is
// perfect so its 23 bit Decode always returns a codeword, retries and failures
// only happen with codecs that can detect uncorrectable words.
func (t *Transmitter) sendUnit(b byte) (byte, Report, error) {
	var r Report
	codeword, err := t.Code.Encode(ByteToUnit(b))
	if err != nil {
		return 0, r, err
	}

	for attempt := 0; attempt <= t.Retries; attempt++ {
		if attempt > 0 {
			r.Retransmissions++
		}

		received := t.Channel.Transmit(codeword)
		flips := distance(received, codeword)
		r.ChannelBitErrors += flips
		if flips > 0 {
			r.Damaged++
		}

		decoded, err := t.Code.Decode(received)
		if errors.Is(err, golay.ErrDecodingFailure) {
			logrus.Debugf("framing: attempt %v for byte %#02x failed: %v", attempt, b, err)
			continue
		}
		if err != nil {
			return 0, r, err
		}

		out, err := UnitToByte(decoded)
		return out, r, err
	}

	r.Failed++
	return 0, r, nil
}

func (t *Transmitter) run(ctx context.Context, data []byte, send func(b byte) (byte, Report, error)) ([]byte, Report, error) {
	output := make([]byte, len(data))
	report := Report{Units: len(data)}
	var firstErr error
	mux := sync.Mutex{}

	threads := t.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	pool := threadpool.New(ctx, threads)
sendLoop:
	for i := range data {
		select {
		case <-ctx.Done():
			break sendLoop
		default:
		}

		index := i
		pool.Add(func() {
			b, r, err := send(data[index])
			output[index] = b

			mux.Lock()
			report.add(r)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			mux.Unlock()

			if t.Progress != nil {
				t.Progress()
			}
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, report, err
	}
	if firstErr != nil {
		return nil, report, firstErr
	}

	for i := range data {
		if data[i] != output[i] {
			report.ByteErrors++
		}
	}
	return output, report, nil
}

// SendBytes encodes, transmits and decodes every byte of data.
func (t *Transmitter) SendBytes(ctx context.Context, data []byte) ([]byte, Report, error) {
	return t.run(ctx, data, t.sendUnit)
}

// SendBytesUncoded sends every byte as a raw 8 bit vector, for comparison.
func (t *Transmitter) SendBytesUncoded(ctx context.Context, data []byte) ([]byte, Report, error) {
	return t.run(ctx, data, func(b byte) (byte, Report, error) {
		sent := bits.FromByte(b)
		received := t.Channel.Transmit(sent)
		r := Report{ChannelBitErrors: distance(sent, received)}
		if r.ChannelBitErrors > 0 {
			r.Damaged++
		}
		out, err := received.Byte()
		return out, r, err
	})
}

func (t *Transmitter) SendText(ctx context.Context, text string) (string, Report, error) {
	out, r, err := t.SendBytes(ctx, []byte(text))
	return string(out), r, err
}

func (t *Transmitter) SendTextUncoded(ctx context.Context, text string) (string, Report, error) {
	out, r, err := t.SendBytesUncoded(ctx, []byte(text))
	return string(out), r, err
}
