package bpsk

import (
	"context"
	"testing"

	"github.com/nathanhack/golay/benchmarking"
	"github.com/nathanhack/golay/cmd/internal/tools"
	"github.com/stretchr/testify/require"
)

func TestTypeInfo(t *testing.T) {
	require.Equal(t, "BPSK:github.com/nathanhack/golay/linearblock/golay/Decoder", TypeInfo())
}

func TestTrial(t *testing.T) {
	code, err := tools.NewCode()
	require.NoError(t, err)

	//at this E_b/N_0 the noise never crosses the decision boundary in practice
	stats := Trial(code)(context.Background(), 100, 200, 2, benchmarking.Stats{}, nil)
	require.Equal(t, 200, stats.ChannelCodewordError.Count)
	require.Zero(t, stats.ChannelCodewordError.Mean)
}
