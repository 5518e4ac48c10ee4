package internal

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestValidateHGMatrices(t *testing.T) {
	tests := []struct {
		G        mat.SparseMat
		H        mat.SparseMat
		expected bool
	}{
		{ //Hamming 7
			mat.CSRMat(4, 7, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1),
			true,
		},
		{ //Hamming 7 with one bad parity column
			mat.CSRMat(4, 7, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1),
			false,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := ValidateHGMatrices(test.G, test.H)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestIsInvolution(t *testing.T) {
	tests := []struct {
		M        mat.SparseMat
		expected bool
	}{
		{mat.CSRIdentity(5), true},
		{mat.CSRMat(2, 2, 0, 1, 1, 0), true},
		{mat.CSRMat(2, 2, 1, 1, 1, 0), false},
		{mat.CSRMat(2, 2, 1, 1, 1, 1), false},
		{mat.CSRMat(2, 3, 1, 0, 0, 0, 1, 0), false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := IsInvolution(test.M)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
