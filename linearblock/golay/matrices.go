package golay

import (
	"fmt"
	"sync"

	"github.com/nathanhack/golay/bits"
	"github.com/nathanhack/golay/linearblock"
	"github.com/nathanhack/golay/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// bValues is the 12x12 matrix B of the extended Golay code, row major.
// It is symmetric and its own inverse.
var bValues = []int{
	1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1,
	1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1,
	0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1,
	1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1,
	1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1,
	0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1,
	0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 0, 1,
	1, 0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1,
	0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
}

//Matrices holds the fixed GF(2) matrices used for encoding and decoding.
// They must not be modified after construction.
type Matrices struct {
	G mat.SparseMat // 12x23 generator [I | first 11 columns of B]
	H mat.SparseMat // 24x12 parity check [I ; B]
	B mat.SparseMat // 12x12
}

// DefaultMatrices returns the matrices built once per process and shared read only.
var DefaultMatrices = sync.OnceValue(NewMatrices)

// NewMatrices builds G and H from the identity and B.
func NewMatrices() *Matrices {
	logrus.Debugf("Creating Golay generator and parity check matrices")
	I := mat.CSRIdentity(MessageLength)
	B := mat.CSRMat(MessageLength, MessageLength, bValues...)

	G := mat.DOKMat(MessageLength, CodewordLength)
	G.SetMatrix(I, 0, 0)
	G.SetMatrix(B.Slice(0, 0, MessageLength, CodewordLength-MessageLength), 0, MessageLength)

	H := mat.DOKMat(ExtendedLength, MessageLength)
	H.SetMatrix(I, 0, 0)
	H.SetMatrix(B, MessageLength, 0)

	logrus.Debugf("Golay matrices complete")
	return &Matrices{G: G, H: H, B: B}
}

// Validate checks B*B=I and that [I|B] is orthogonal to H.
func (m *Matrices) Validate() error {
	if !internal.IsInvolution(m.B) {
		return fmt.Errorf("golay: B*B must equal the identity")
	}

	G := mat.DOKMat(MessageLength, ExtendedLength)
	G.SetMatrix(mat.CSRIdentity(MessageLength), 0, 0)
	G.SetMatrix(m.B, 0, MessageLength)
	if !internal.ValidateHGMatrices(G, m.H.T()) {
		return fmt.Errorf("golay: extended generator does not satisfy G*H=0")
	}
	return nil
}

// LinearBlock expresses the (23,12) code as a linear block with the
// 11x23 parity matrix [A.T | I] where A is the parity part of G.
func (m *Matrices) LinearBlock() *linearblock.LinearBlock {
	parity := CodewordLength - MessageLength
	H := mat.DOKMat(parity, CodewordLength)
	H.SetMatrix(m.G.Slice(0, MessageLength, MessageLength, parity).T(), 0, 0)
	H.SetMatrix(mat.CSRIdentity(parity), 0, MessageLength)
	return linearblock.NewSystematic(mat.CSRMatCopy(H), mat.CSRMatCopy(m.G))
}

// product returns v*M over GF(2).
func product(v bits.Vector, M mat.SparseMat) bits.Vector {
	rows, cols := M.Dims()
	if v.Len() != rows {
		panic(fmt.Sprintf("vector length == %v is required but found %v", rows, v.Len()))
	}

	result := mat.CSRVec(cols)
	result.MulMat(v.Sparse(), M)
	return bits.FromSparse(result)
}
