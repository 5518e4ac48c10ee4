package golay

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/nathanhack/golay/bits"
)

func newCode(t testing.TB) *Code {
	code, err := New()
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	return code
}

func parse(t testing.TB, s string) bits.Vector {
	v, err := bits.Parse(s)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	return v
}

func message(i int) bits.Vector {
	return bits.FromUint(MessageLength, uint64(i))
}

func TestEncodeKnownCodewords(t *testing.T) {
	code := newCode(t)
	tests := []struct {
		message  string
		codeword string
	}{
		{"000000000000", "00000000000000000000000"},
		{"100000000000", "10000000000011011100010"},
		{"101100111010", "10110011101001000001011"},
		{"010011000111", "01001100011111010000101"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := code.Encode(parse(t, test.message))
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if actual.String() != test.codeword {
				t.Fatalf("expected %v but found %v", test.codeword, actual)
			}

			decoded, err := code.Decode(actual)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if decoded.String() != test.message {
				t.Fatalf("expected %v but found %v", test.message, decoded)
			}
		})
	}
}

func TestEncodeFirstRowOfG(t *testing.T) {
	code := newCode(t)
	actual, _ := code.Encode(parse(t, "100000000000"))
	expected := bits.FromSparse(code.Matrices.G.Row(0))
	if !actual.Equals(expected) {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}

func TestRoundTripAllMessages(t *testing.T) {
	code := newCode(t)
	for i := 0; i < 1<<MessageLength; i++ {
		m := message(i)
		codeword, err := code.Encode(m)
		if err != nil {
			t.Fatalf("expected no error found :%v", err)
		}
		actual, err := code.Decode(codeword)
		if err != nil {
			t.Fatalf("%v: expected no error found :%v", m, err)
		}
		if !actual.Equals(m) {
			t.Fatalf("expected %v but found %v", m, actual)
		}
	}
}

func flipped(codeword bits.Vector, positions ...int) bits.Vector {
	for _, p := range positions {
		codeword.Flip(p)
	}
	return codeword
}

func TestCorrectsAllPatternsUpToThreeErrors(t *testing.T) {
	code := newCode(t)
	messages := []int{0, 0b100000000000, 0b101100111010, 0xFFF, rand.Intn(1 << MessageLength)}
	for i, mi := range messages {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m := message(mi)
			codeword, _ := code.Encode(m)
			check := func(positions ...int) {
				actual, err := code.Decode(flipped(codeword, positions...))
				if err != nil {
					t.Fatalf("%v flipped %v: expected no error found :%v", m, positions, err)
				}
				if !actual.Equals(m) {
					t.Fatalf("%v flipped %v: expected %v but found %v", m, positions, m, actual)
				}
			}
			for a := 0; a < CodewordLength; a++ {
				check(a)
				for b := a + 1; b < CodewordLength; b++ {
					check(a, b)
					for c := b + 1; c < CodewordLength; c++ {
						check(a, b, c)
					}
				}
			}
		})
	}
}

func TestCorrectsRandomThreeErrorsEveryMessage(t *testing.T) {
	code := newCode(t)
	for i := 0; i < 1<<MessageLength; i++ {
		m := message(i)
		codeword, _ := code.Encode(m)
		positions := rand.Perm(CodewordLength)[:1+rand.Intn(3)]
		actual, err := code.Decode(flipped(codeword, positions...))
		if err != nil {
			t.Fatalf("%v flipped %v: expected no error found :%v", m, positions, err)
		}
		if !actual.Equals(m) {
			t.Fatalf("%v flipped %v: expected %v but found %v", m, positions, m, actual)
		}
	}
}

func TestDecodeNeverFailsOnPerfectCode(t *testing.T) {
	code := newCode(t)
	for i := 0; i < 2000; i++ {
		received := bits.FromUint(CodewordLength, rand.Uint64())
		if _, err := code.Decode(received); err != nil {
			t.Fatalf("%v: expected no error found :%v", received, err)
		}
	}
}

func TestDecodeExtendedDetectsFourErrors(t *testing.T) {
	code := newCode(t)
	tests := []struct {
		message   int
		positions []int
	}{
		{0, []int{0, 1, 2, 3}},
		{0b101100111010, []int{1, 2, 3, 4}},
		{0b101100111010, []int{0, 11, 12, 23}},
		{0xFFF, []int{5, 9, 17, 20}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			codeword, _ := code.Encode(message(test.message))
			//the extended codeword has even weight
			extended := codeword.Append(codeword.HammingWeight()%2 == 1)
			if s, _ := code.Syndrome(extended); s.HammingWeight() != 0 {
				t.Fatalf("expected zero syndrome but found %v", s)
			}

			_, err := code.DecodeExtended(flipped(extended, test.positions...))
			if !errors.Is(err, ErrDecodingFailure) {
				t.Fatalf("expected %v but found %v", ErrDecodingFailure, err)
			}
		})
	}
}

func TestErrorPatternCases(t *testing.T) {
	code := newCode(t)
	tests := []struct {
		positions []int
		syndrome  string
	}{
		{[]int{3}, "000100000000"},
		{[]int{0, 5}, "100001000000"},
		{[]int{0, 12}, "010111000101"},
		{[]int{4, 20}, "010100111001"},
		{[]int{23}, "111111111110"},
		{[]int{12, 13, 14}, "000101011001"},
		{[]int{0, 12, 13}, "111001001110"},
		{[]int{}, "000000000000"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			w := flipped(bits.New(ExtendedLength), test.positions...)

			s, err := code.Syndrome(w)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if s.String() != test.syndrome {
				t.Fatalf("expected %v but found %v", test.syndrome, s)
			}

			u, err := code.ErrorPattern(w)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if !u.Equals(w) {
				t.Fatalf("expected %v but found %v", w, u)
			}

			v, _ := code.Correct(w)
			if v.HammingWeight() != 0 {
				t.Fatalf("expected zero codeword but found %v", v)
			}
		})
	}
}

func TestExtend(t *testing.T) {
	tests := []struct {
		received string
		expected string
	}{
		{"00000000000000000000000", "000000000000000000000001"},
		{"10000000000000000000000", "100000000000000000000000"},
		{"10000000000011011100010", "100000000000110111000100"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Extend(parse(t, test.received))
			if actual.String() != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			if actual.HammingWeight()%2 != 1 {
				t.Fatalf("expected odd weight for %v", actual)
			}
		})
	}
}

func TestEncoderLinearity(t *testing.T) {
	code := newCode(t)
	for i := 0; i < 500; i++ {
		a, b := message(rand.Intn(1<<MessageLength)), message(rand.Intn(1<<MessageLength))
		ab, _ := a.Xor(b)

		encA, _ := code.Encode(a)
		encB, _ := code.Encode(b)
		encAB, _ := code.Encode(ab)

		expected, _ := encA.Xor(encB)
		if !encAB.Equals(expected) {
			t.Fatalf("encode(%v^%v): expected %v but found %v", a, b, expected, encAB)
		}
	}
}

func TestInvalidLengths(t *testing.T) {
	code := newCode(t)
	tests := []struct {
		name string
		call func() error
	}{
		{"encode 11", func() error { _, err := code.Encode(bits.New(11)); return err }},
		{"encode 13", func() error { _, err := code.Encode(bits.New(13)); return err }},
		{"decode 22", func() error { _, err := code.Decode(bits.New(22)); return err }},
		{"decode 24", func() error { _, err := code.Decode(bits.New(24)); return err }},
		{"decode extended 23", func() error { _, err := code.DecodeExtended(bits.New(23)); return err }},
		{"syndrome 12", func() error { _, err := code.Syndrome(bits.New(12)); return err }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.call()
			if !errors.Is(err, ErrInvalidLength) {
				t.Fatalf("expected %v but found %v", ErrInvalidLength, err)
			}
		})
	}
}

func TestMatrices(t *testing.T) {
	m := NewMatrices()
	if err := m.Validate(); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	rows, cols := m.G.Dims()
	if rows != MessageLength || cols != CodewordLength {
		t.Fatalf("expected G to be 12x23 but found %vx%v", rows, cols)
	}
	rows, cols = m.H.Dims()
	if rows != ExtendedLength || cols != MessageLength {
		t.Fatalf("expected H to be 24x12 but found %vx%v", rows, cols)
	}

	for i := 0; i < MessageLength; i++ {
		for j := 0; j < MessageLength; j++ {
			if m.B.Row(i).At(j) != m.B.Row(j).At(i) {
				t.Fatalf("expected B to be symmetric at (%v,%v)", i, j)
			}
		}
	}

	lb := m.LinearBlock()
	if !lb.Validate() {
		t.Fatalf("expected valid linearblock code")
	}
	if lb.ParitySymbols() != CodewordLength-MessageLength {
		t.Fatalf("expected %v parity symbols but found %v", CodewordLength-MessageLength, lb.ParitySymbols())
	}
	if DefaultMatrices() != DefaultMatrices() {
		t.Fatalf("expected the default matrices to be shared")
	}
}

func ExampleCode() {
	code, _ := New()

	m, _ := bits.Parse("101100111010")
	codeword, _ := code.Encode(m)
	fmt.Println(codeword)

	codeword.Flip(0)
	codeword.Flip(7)
	codeword.Flip(22)
	decoded, err := code.Decode(codeword)
	fmt.Println(decoded, err)
	//Output:
	// 10110011101001000001011
	// 101100111010 <nil>
}

func BenchmarkDecode(b *testing.B) {
	code := newCode(b)
	codeword, _ := code.Encode(message(0b101100111010))
	codeword = flipped(codeword, 1, 10, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		code.Decode(codeword)
	}
}
