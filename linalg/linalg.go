// Package linalg exposes dense matrix operations over row-major [][]float64
// payloads, which is how matrices arrive over the wire.
package linalg

import (
	"gonum.org/v1/gonum/mat"

	"calctools/calcerr"
)

func toDense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, calcerr.InvalidParam(name, "matrix must be non-empty")
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, calcerr.InvalidParam(name,
				"ragged matrix: row %d has %d columns, row 0 has %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

func fromDense(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// Multiply returns the matrix product a*b.
func Multiply(a, b [][]float64) ([][]float64, error) {
	da, err := toDense("a", a)
	if err != nil {
		return nil, err
	}
	db, err := toDense("b", b)
	if err != nil {
		return nil, err
	}
	_, ac := da.Dims()
	br, _ := db.Dims()
	if ac != br {
		return nil, calcerr.InvalidParam("b",
			"dimension mismatch: a has %d columns, b has %d rows", ac, br)
	}
	var prod mat.Dense
	prod.Mul(da, db)
	return fromDense(&prod), nil
}

// Inverse returns the inverse of a square matrix, or an EvaluationError
// when the matrix is singular.
func Inverse(a [][]float64) ([][]float64, error) {
	d, err := squareDense(a)
	if err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, &calcerr.EvaluationError{Op: "matrix_inverse", Detail: err.Error()}
	}
	return fromDense(&inv), nil
}

// Determinant returns det(a) for a square matrix.
func Determinant(a [][]float64) (float64, error) {
	d, err := squareDense(a)
	if err != nil {
		return 0, err
	}
	return mat.Det(d), nil
}

// Eigenvalues returns the (possibly complex) eigenvalues of a square
// matrix.
func Eigenvalues(a [][]float64) ([]complex128, error) {
	d, err := squareDense(a)
	if err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if !eig.Factorize(d, mat.EigenNone) {
		return nil, &calcerr.EvaluationError{
			Op: "eigenvalues", Detail: "eigendecomposition failed to converge",
		}
	}
	return eig.Values(nil), nil
}

func squareDense(a [][]float64) (*mat.Dense, error) {
	d, err := toDense("matrix", a)
	if err != nil {
		return nil, err
	}
	r, c := d.Dims()
	if r != c {
		return nil, calcerr.InvalidParam("matrix",
			"must be square, got %dx%d", r, c)
	}
	return d, nil
}
