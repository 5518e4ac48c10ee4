package internal

import (
	mat "github.com/nathanhack/sparsemat"
)

func ColumnSwapped(H mat.SparseMat, order []int) mat.SparseMat {
	rows, cols := H.Dims()
	result := mat.CSRMat(rows, cols)

	for c, c1 := range order {
		result.SetColumn(c, H.Column(c1))
	}
	return result
}

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, _ := G.Dims()
	cols, _ := H.Dims()

	//we cache the rows of H, each one is a column of H.T
	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j])%2 != 0 {
				return false
			}
		}
	}

	return true
}

//IsInvolution tests if the square matrix M satisfies M*M == I over GF(2)
func IsInvolution(M mat.SparseMat) bool {
	rows, cols := M.Dims()
	if rows != cols {
		return false
	}

	for i := 0; i < rows; i++ {
		row := M.Row(i)
		for j := 0; j < cols; j++ {
			expected := 0
			if i == j {
				expected = 1
			}
			if row.Dot(M.Column(j))%2 != expected {
				return false
			}
		}
	}
	return true
}
