package golay

import (
	"fmt"

	"github.com/nathanhack/golay/bits"
	"github.com/sirupsen/logrus"
)

const (
	maxSyndromeWeight = 3
	maxAdjustedWeight = 2
)

//Decoder recovers messages using syndrome decoding of the extended code.
// It keeps no state between calls and is safe for concurrent use.
type Decoder struct {
	m     *Matrices
	bRows [MessageLength]bits.Vector
}

func NewDecoder(m *Matrices) *Decoder {
	d := &Decoder{m: m}
	for i := range d.bRows {
		d.bRows[i] = bits.FromSparse(m.B.Row(i))
	}
	return d
}

// Extend appends a bit to the received word so the result has odd weight.
// Up to three channel errors in the 23 bits stay within three errors of the
// extended codeword this way.
func Extend(received bits.Vector) bits.Vector {
	return received.Append(received.HammingWeight()%2 == 0)
}

// Decode returns the 12 bit message for a received 23 bit word.
func (d *Decoder) Decode(received bits.Vector) (bits.Vector, error) {
	if received.Len() != CodewordLength {
		return bits.Vector{}, fmt.Errorf("golay: decode requires %v bits but found %v: %w", CodewordLength, received.Len(), ErrInvalidLength)
	}
	return d.DecodeExtended(Extend(received))
}

// DecodeExtended returns the 12 bit message for a received 24 bit word of the extended code.
func (d *Decoder) DecodeExtended(w bits.Vector) (bits.Vector, error) {
	v, err := d.Correct(w)
	if err != nil {
		return bits.Vector{}, err
	}
	return v.Slice(0, MessageLength), nil
}

// Correct returns the extended codeword closest to w.
func (d *Decoder) Correct(w bits.Vector) (bits.Vector, error) {
	u, err := d.ErrorPattern(w)
	if err != nil {
		return bits.Vector{}, err
	}
	return w.Xor(u)
}

// Syndrome returns w*H.
func (d *Decoder) Syndrome(w bits.Vector) (bits.Vector, error) {
	if w.Len() != ExtendedLength {
		return bits.Vector{}, fmt.Errorf("golay: syndrome requires %v bits but found %v: %w", ExtendedLength, w.Len(), ErrInvalidLength)
	}
	return product(w, d.m.H), nil
}

// ErrorPattern locates the errors in w, ErrDecodingFailure is returned
// when no pattern of weight 3 or less explains the syndrome.
func (d *Decoder) ErrorPattern(w bits.Vector) (bits.Vector, error) {
	s, err := d.Syndrome(w)
	if err != nil {
		return bits.Vector{}, err
	}
	zero := bits.New(MessageLength)

	if s.HammingWeight() <= maxSyndromeWeight {
		return s.Concat(zero), nil
	}

	if row, low, ok := d.searchRows(s); ok {
		return low.Concat(unit(row)), nil
	}

	s2 := product(s, d.m.B)
	if s2.HammingWeight() <= maxSyndromeWeight {
		return zero.Concat(s2), nil
	}

	if row, high, ok := d.searchRows(s2); ok {
		return unit(row).Concat(high), nil
	}

	logrus.Debugf("golay: no correctable error pattern for %v (syndrome %v)", w, s)
	return bits.Vector{}, fmt.Errorf("golay: syndrome %v: %w", s, ErrDecodingFailure)
}

// searchRows returns the first row of B whose sum with s has weight 2 or less.
func (d *Decoder) searchRows(s bits.Vector) (int, bits.Vector, bool) {
	for row, b := range d.bRows {
		u, _ := s.Xor(b)
		if u.HammingWeight() <= maxAdjustedWeight {
			return row, u, true
		}
	}
	return -1, bits.Vector{}, false
}

func unit(i int) bits.Vector {
	v := bits.New(MessageLength)
	v.Set(i, true)
	return v
}
