package send

import (
	"context"
	"testing"

	"github.com/nathanhack/golay/channel"
	"github.com/nathanhack/golay/framing"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNewTransmitter(t *testing.T) {
	viper.Set("probability", 0.0)
	viper.Set("retries", 2)
	t.Cleanup(viper.Reset)

	tr, err := NewTransmitter()
	require.NoError(t, err)
	require.Equal(t, 2, tr.Retries)

	text, report, err := tr.SendText(context.Background(), "golay")
	require.NoError(t, err)
	require.Equal(t, "golay", text)
	require.Equal(t, framing.Report{Units: 5}, report)
}

func TestNewTransmitterInvalidProbability(t *testing.T) {
	viper.Set("probability", 2.0)
	t.Cleanup(viper.Reset)

	_, err := NewTransmitter()
	require.ErrorIs(t, err, channel.ErrInvalidProbability)
}

func TestFormatReport(t *testing.T) {
	r := framing.Report{Units: 4, ChannelBitErrors: 9, Damaged: 3, Retransmissions: 1, Failed: 1, ByteErrors: 2}
	require.Equal(t, "golay: 4 units, 9 bits flipped, 3 units damaged, 1 retransmissions, 1 failed, 2 bytes wrong", FormatReport("golay", r))
}
