// Package golay implements the binary Golay code (23,12,7). Received words are
// decoded through the extended [24,12,8] code which corrects every error
// pattern of weight 3 or less.
package golay

import (
	"errors"
	"fmt"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/linearblock"
)

const (
	MessageLength  = 12
	CodewordLength = 23
	ExtendedLength = 24
)

var (
	ErrInvalidLength   = bits.ErrInvalidLength
	ErrDecodingFailure = errors.New("uncorrectable error pattern, retransmission required")
)

// Code bundles the encoder and decoder built on the same matrices.
type Code struct {
	*Encoder
	*Decoder
	Matrices *Matrices
	Block    *linearblock.LinearBlock
}

// New creates the Golay code using the shared matrices, validating them first.
func New() (*Code, error) {
	m := DefaultMatrices()
	if err := m.Validate(); err != nil {
		return nil, err
	}

	encoder := NewEncoder(m)
	if !encoder.block.Validate() {
		return nil, fmt.Errorf("golay: generator matrix does not satisfy G*H.T=0")
	}

	return &Code{
		Encoder:  encoder,
		Decoder:  NewDecoder(m),
		Matrices: m,
		Block:    encoder.block,
	}, nil
}
