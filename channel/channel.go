// Package channel simulates a binary symmetric channel.
package channel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/nathanhack/golay/bits"
)

var ErrInvalidProbability = errors.New("probability must be in [0, 1]")

func validate(probability float64) error {
	if math.IsNaN(probability) || probability < 0 || 1 < probability {
		return fmt.Errorf("channel: %v: %w", probability, ErrInvalidProbability)
	}
	return nil
}

func transmit(v bits.Vector, probability float64, sample func() float64) bits.Vector {
	for i := 0; i < v.Len(); i++ {
		if sample() < probability {
			v.Flip(i)
		}
	}
	return v
}

// Transmit flips every bit of v independently with the given probability.
// A bit flips when its uniform sample in [0,1) is strictly less than the
// probability, so 0 never flips and 1 always does.
func Transmit(v bits.Vector, probability float64) (bits.Vector, error) {
	if err := validate(probability); err != nil {
		return bits.Vector{}, err
	}
	return transmit(v, probability, rand.Float64), nil
}

//BinarySymmetric is a channel with its own random source, so runs can be
// repeated with the same seed. It is safe for concurrent use.
type BinarySymmetric struct {
	probability float64
	mux         sync.Mutex
	rand        *rand.Rand
}

func NewBinarySymmetric(probability float64, seed int64) (*BinarySymmetric, error) {
	if err := validate(probability); err != nil {
		return nil, err
	}
	return &BinarySymmetric{
		probability: probability,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (c *BinarySymmetric) Probability() float64 {
	return c.probability
}

func (c *BinarySymmetric) Transmit(v bits.Vector) bits.Vector {
	c.mux.Lock()
	defer c.mux.Unlock()
	return transmit(v, c.probability, c.rand.Float64)
}

// FlipCount flips min(max(count, 0), v.Len()) distinct randomly chosen bits.
func FlipCount(v bits.Vector, count int) bits.Vector {
	if count > v.Len() {
		count = v.Len()
	}
	if count < 0 {
		count = 0
	}
	for _, i := range rand.Perm(v.Len())[:count] {
		v.Flip(i)
	}
	return v
}
