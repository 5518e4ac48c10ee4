package bits

import (
	"errors"
	"fmt"
	mathbits "math/bits"
	"strings"

	mat "github.com/nathanhack/sparsemat"
)

// MaxLen is the largest vector a Vector can hold.
const MaxLen = 64

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidFormat = errors.New("invalid format")
)

//Vector is a fixed length sequence of bits packed into a single word.
// Bit 0 is the most significant bit of the packed value, so Uint() reads
// the same way String() prints.
type Vector struct {
	n    int
	word uint64
}

func mask(n int) uint64 {
	if n == MaxLen {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

func checkLen(n int) {
	if n < 0 || MaxLen < n {
		panic(fmt.Sprintf("vector length 0<=length<=%v required but found %v", MaxLen, n))
	}
}

// New creates an all zero vector of length n.
func New(n int) Vector {
	checkLen(n)
	return Vector{n: n}
}

// FromUint creates a vector of length n from the low n bits of x.
func FromUint(n int, x uint64) Vector {
	checkLen(n)
	return Vector{n: n, word: x & mask(n)}
}

func FromBools(values ...bool) Vector {
	v := New(len(values))
	for i, b := range values {
		v.Set(i, b)
	}
	return v
}

// FromByte creates an 8 bit vector, most significant bit first.
func FromByte(b byte) Vector {
	return FromUint(8, uint64(b))
}

//FromSparse converts a sparsemat vector, any odd entry is a one.
func FromSparse(s mat.SparseVector) Vector {
	v := New(s.Len())
	for _, i := range s.NonzeroArray() {
		if s.At(i)%2 != 0 {
			v.Set(i, true)
		}
	}
	return v
}

// Parse reads a string of '0' and '1' characters.
func Parse(s string) (Vector, error) {
	if len(s) > MaxLen {
		return Vector{}, fmt.Errorf("bits: %v characters exceeds the maximum of %v: %w", len(s), MaxLen, ErrInvalidLength)
	}
	v := New(len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			v.Set(i, true)
		default:
			return Vector{}, fmt.Errorf("bits: unexpected %q at position %v: %w", r, i, ErrInvalidFormat)
		}
	}
	return v, nil
}

func (v Vector) Len() int {
	return v.n
}

func (v Vector) shift(i int) uint {
	if i < 0 || v.n <= i {
		panic(fmt.Sprintf("index 0<=index<%v required but found %v", v.n, i))
	}
	return uint(v.n - 1 - i)
}

func (v Vector) Get(i int) bool {
	return v.word>>v.shift(i)&1 == 1
}

func (v *Vector) Set(i int, value bool) {
	s := v.shift(i)
	if value {
		v.word |= 1 << s
	} else {
		v.word &^= 1 << s
	}
}

func (v *Vector) Flip(i int) {
	v.word ^= 1 << v.shift(i)
}

// HammingWeight returns the number of ones.
func (v Vector) HammingWeight() int {
	return mathbits.OnesCount64(v.word)
}

// Xor returns a new vector v XOR o, both must be the same length.
func (v Vector) Xor(o Vector) (Vector, error) {
	if v.n != o.n {
		return Vector{}, fmt.Errorf("bits: xor of %v and %v bit vectors: %w", v.n, o.n, ErrInvalidLength)
	}
	return Vector{n: v.n, word: v.word ^ o.word}, nil
}

func (v Vector) Equals(o Vector) bool {
	return v.n == o.n && v.word == o.word
}

// Uint returns the packed bits, bit 0 being the most significant.
func (v Vector) Uint() uint64 {
	return v.word
}

// Byte converts an 8 bit vector back into a byte.
func (v Vector) Byte() (byte, error) {
	if v.n != 8 {
		return 0, fmt.Errorf("bits: byte requires 8 bits but found %v: %w", v.n, ErrInvalidLength)
	}
	return byte(v.word), nil
}

// Slice returns the bits [from, to).
func (v Vector) Slice(from, to int) Vector {
	if from < 0 || to < from || v.n < to {
		panic(fmt.Sprintf("slice [%v:%v] out of range for length %v", from, to, v.n))
	}
	n := to - from
	return Vector{n: n, word: v.word >> uint(v.n-to) & mask(n)}
}

// Concat returns v followed by o.
func (v Vector) Concat(o Vector) Vector {
	n := v.n + o.n
	checkLen(n)
	if o.n == MaxLen {
		return Vector{n: n, word: o.word}
	}
	return Vector{n: n, word: v.word<<uint(o.n) | o.word}
}

func (v Vector) Append(bit bool) Vector {
	var b uint64
	if bit {
		b = 1
	}
	return v.Concat(Vector{n: 1, word: b})
}

// Sparse converts the vector into a sparsemat vector for matrix products.
func (v Vector) Sparse() mat.SparseVector {
	s := mat.CSRVec(v.n)
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			s.Set(i, 1)
		}
	}
	return s
}

func (v Vector) String() string {
	buf := strings.Builder{}
	buf.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}
