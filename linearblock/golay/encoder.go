package golay

import (
	"fmt"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/linearblock"
)

// Encoder maps 12 bit messages to 23 bit codewords.
type Encoder struct {
	block *linearblock.LinearBlock
}

func NewEncoder(m *Matrices) *Encoder {
	return &Encoder{block: m.LinearBlock()}
}

// Encode returns message*G.
func (e *Encoder) Encode(message bits.Vector) (bits.Vector, error) {
	if message.Len() != MessageLength {
		return bits.Vector{}, fmt.Errorf("golay: encode requires %v bits but found %v: %w", MessageLength, message.Len(), ErrInvalidLength)
	}
	return bits.FromSparse(e.block.Encode(message.Sparse())), nil
}
