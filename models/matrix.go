package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatrixDim is the side length of the rotation matrices logged by the rig.
const MatrixDim = 4

// Matrix is a 4×4 rotation matrix sample.
type Matrix struct {
	d *mat.Dense
}

// NewMatrix reshapes 16 values, row-major, into a Matrix.
func NewMatrix(rowMajor []float64) (Matrix, error) {
	if len(rowMajor) != MatrixDim*MatrixDim {
		return Matrix{}, fmt.Errorf("matrix needs %d values, got %d", MatrixDim*MatrixDim, len(rowMajor))
	}
	data := make([]float64, len(rowMajor))
	copy(data, rowMajor)
	return Matrix{d: mat.NewDense(MatrixDim, MatrixDim, data)}, nil
}

func (m Matrix) At(i, j int) float64 { return m.d.At(i, j) }

// Dense returns a copy of the underlying gonum matrix.
func (m Matrix) Dense() *mat.Dense { return mat.DenseCopyOf(m.d) }

// RowMajor returns the 16 elements in row-major order.
func (m Matrix) RowMajor() []float64 {
	out := make([]float64, 0, MatrixDim*MatrixDim)
	for i := 0; i < MatrixDim; i++ {
		out = append(out, m.d.RawRowView(i)...)
	}
	return out
}

// Blend returns a*m + b*other element-wise. The result is not
// re-orthonormalised, so a blend of two rotations is generally not a rotation.
func (m Matrix) Blend(a float64, other Matrix, b float64) Matrix {
	var left, right mat.Dense
	left.Scale(a, m.d)
	right.Scale(b, other.d)
	left.Add(&left, &right)
	return Matrix{d: &left}
}

// MatrixSeries is the stream type produced by the matrix-per-line reader.
// Mystery holds the unexplained scalar that precedes every matrix on disk,
// verbatim and index-aligned with the readings; lookups never touch it.
type MatrixSeries struct {
	*TimeSeries[Matrix]
	Mystery []string
}

// NewMatrixSeries builds a MatrixSeries from parallel slices.
func NewMatrixSeries(timestamps []int64, values []Matrix, mystery []string) (*MatrixSeries, error) {
	if len(mystery) != len(values) {
		return nil, fmt.Errorf("matrix series: %d mystery values for %d matrices", len(mystery), len(values))
	}
	ts, err := NewTimeSeries(timestamps, values)
	if err != nil {
		return nil, err
	}
	return &MatrixSeries{TimeSeries: ts, Mystery: mystery}, nil
}
