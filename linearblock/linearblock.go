package linearblock

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nathanhack/golay/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

type Systematic struct {
	HColumnOrder []int
	G            mat.SparseMat
}

//LinearBlock contains matrices for the H matrix and the systematic G generator.
type LinearBlock struct {
	H          mat.SparseMat //the H(parity) matrix, one row per parity symbol
	Processing *Systematic   // contains systematic generator matrix
}

//// For JSON unmarshalling
type systematic struct {
	HColumnOrder []int
	G            mat.CSRMatrix
}
type linearblock struct {
	H          mat.CSRMatrix
	Processing *systematic
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.H = &lb.H
	if lb.Processing == nil {
		return nil
	}

	l.Processing = &Systematic{
		HColumnOrder: lb.Processing.HColumnOrder,
		G:            &lb.Processing.G,
	}

	return nil
}

// NewSystematic wraps an H and a generator already in [I, *] form, so no columns are reordered.
func NewSystematic(H, G mat.SparseMat) *LinearBlock {
	_, n := G.Dims()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return &LinearBlock{
		H: H,
		Processing: &Systematic{
			HColumnOrder: order,
			G:            G,
		},
	}
}

//Encode take in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	G := l.Processing.G
	rows, cols := G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, G)

	return ToNonSystematic(codeword, l.Processing.HColumnOrder)
}

// ToNonSystematic moves the codeword from the generator's column order back to H's.
func ToNonSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if len(ordering) > 0 && codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())

	for c, c1 := range ordering {
		result.Set(c1, codeword.At(c))
	}

	return result
}

// ToSystematic is the inverse of ToNonSystematic.
func ToSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if len(ordering) > 0 && codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())

	for c, c1 := range ordering {
		result.Set(c, codeword.At(c1))
	}

	return result
}

//Decode takes in an error free codeword and returns the message contained in it
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	ml := l.MessageLength()

	codeword = ToSystematic(codeword, l.Processing.HColumnOrder)
	return codeword.Slice(0, ml)
}

// Syndrome returns H*codeword, zero for every valid codeword.
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

// CheckGenerator encodes every unit message and checks the codeword has a zero
// syndrome and decodes back to the same message.
func (l *LinearBlock) CheckGenerator() bool {
	k := l.MessageLength()
	for i := 0; i < k; i++ {
		message := mat.CSRVec(k)
		message.Set(i, 1)

		codeword := l.Encode(message)
		syndrome := l.Syndrome(codeword)
		for _, j := range syndrome.NonzeroArray() {
			if syndrome.At(j)%2 != 0 {
				return false
			}
		}
		if !l.Decode(codeword).Equals(message) {
			return false
		}
	}
	return true
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.Processing.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	return internal.ValidateHGMatrices(l.Processing.G, internal.ColumnSwapped(l.H, l.Processing.HColumnOrder))
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString(fmt.Sprintf("Order: %v", l.Processing.HColumnOrder))
	buf.WriteString("\nG:\n")
	buf.WriteString(l.Processing.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
