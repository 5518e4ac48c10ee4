package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/golay/bits"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int) bits.Vector {
	return bits.FromUint(len, rand.Uint64())
}

// RandomMessageOnesCount creates a random message of length len with a hamming weight equal to min(onesCount, len)
func RandomMessageOnesCount(len int, onesCount int) bits.Vector {
	message := bits.New(len)
	for message.HammingWeight() < onesCount && message.HammingWeight() < len {
		message.Set(rand.Intn(len), true)
	}
	return message
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
