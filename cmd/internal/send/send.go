package send

import (
	"fmt"
	"math/rand"

	"github.com/nathanhack/golay/channel"
	"github.com/nathanhack/golay/cmd/internal/config"
	"github.com/nathanhack/golay/framing"
	"github.com/nathanhack/golay/linearblock/golay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// NewTransmitter wires the golay code to a binary symmetric channel using the
// probability and retries settings.
func NewTransmitter() (*framing.Transmitter, error) {
	code, err := golay.New()
	if err != nil {
		return nil, err
	}

	probability := viper.GetFloat64("probability")
	ch, err := channel.NewBinarySymmetric(probability, rand.Int63())
	if err != nil {
		return nil, err
	}

	retries := viper.GetInt("retries")
	logrus.Debugf("sending with probability %v and %v retries", probability, retries)
	return &framing.Transmitter{
		Code:    code,
		Channel: ch,
		Retries: retries,
		Threads: config.Threads(),
	}, nil
}

func FormatReport(name string, r framing.Report) string {
	return fmt.Sprintf("%v: %v units, %v bits flipped, %v units damaged, %v retransmissions, %v failed, %v bytes wrong",
		name, r.Units, r.ChannelBitErrors, r.Damaged, r.Retransmissions, r.Failed, r.ByteErrors)
}
