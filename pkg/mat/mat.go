// Package mat provides the dense, row-major matrix type the solver's
// Newton system is built from.
//
// Matrix is backed by one flat []float64 in row-major order so it can be
// handed to gonum.org/v1/gonum/mat (itself row-major/flat) without a
// contiguity check or an unsafe pointer cast. The operations it exposes --
// gemv, transposed gemv, a matrix axpy, and plain, transposed,
// row-scaled and diagonal block writes -- form a small Level-1/2 kernel
// at float64 precision. There is no matrix-matrix product (gemm); vector
// dot, norm, axpy and elementwise product live in pkg/vec.
package mat

import "github.com/itohio/pdipm/pkg/vec"

// Matrix is a dense rows x cols matrix stored row-major.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New allocates a zeroed rows x cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// RawData returns the underlying row-major flat storage. Callers that
// hand this to another library must not retain it past the matrix's
// lifetime without copying.
func (m *Matrix) RawData() []float64 { return m.data }

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set writes the element at (i, j).
func (m *Matrix) Set(i, j int, val float64) { m.data[i*m.cols+j] = val }

// Zero clears every entry of m to 0. Used at the start of every KKT
// assembly so blocks that are never written stay zero.
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// RowView returns row i as a Vector sharing m's backing storage.
func (m *Matrix) RowView(i int) vec.Vector {
	return vec.Vector(m.data[i*m.cols : (i+1)*m.cols])
}

// SetBlock copies src into m at block offset (rowOff, colOff). src may
// have fewer rows/cols than m - rowOff/colOff; this is used to write the
// six named KKT blocks into an otherwise-zero matrix.
func (m *Matrix) SetBlock(rowOff, colOff int, src *Matrix) {
	for i := 0; i < src.rows; i++ {
		copy(m.data[(rowOff+i)*m.cols+colOff:(rowOff+i)*m.cols+colOff+src.cols], src.data[i*src.cols:(i+1)*src.cols])
	}
}

// SetBlockTranspose writes srcᵀ into m at block offset (rowOff, colOff).
// src is rows x cols; the written block is cols x rows.
func (m *Matrix) SetBlockTranspose(rowOff, colOff int, src *Matrix) {
	for i := 0; i < src.rows; i++ {
		for j := 0; j < src.cols; j++ {
			m.Set(rowOff+j, colOff+i, src.At(i, j))
		}
	}
}

// SetBlockRowScaled writes scale[i]*src[i,:] into row rowOff+i of m's
// block at (rowOff, colOff), for each row i of src. Used for the
// -diag(lambda)*Df block of the KKT matrix.
func (m *Matrix) SetBlockRowScaled(rowOff, colOff int, src *Matrix, scale vec.Vector) {
	for i := 0; i < src.rows; i++ {
		row := m.data[(rowOff+i)*m.cols+colOff : (rowOff+i)*m.cols+colOff+src.cols]
		srcRow := src.data[i*src.cols : (i+1)*src.cols]
		s := scale[i]
		for j, v := range srcRow {
			row[j] = s * v
		}
	}
}

// SetBlockDiag writes a diagonal sub-block of size len(d) x len(d) at
// (rowOff, colOff), with d on the diagonal and zero elsewhere (the block
// is assumed already zero from the last Zero() call).
func (m *Matrix) SetBlockDiag(rowOff, colOff int, d vec.Vector) {
	for i, v := range d {
		m.Set(rowOff+i, colOff+i, v)
	}
}

// AddScaled computes m <- m + alpha*src, elementwise (a matrix axpy).
// Used to accumulate H_x = grad2(f0) + sum_i lambda_i * grad2(f_i).
func (m *Matrix) AddScaled(alpha float64, src *Matrix) {
	for i := range m.data {
		m.data[i] += alpha * src.data[i]
	}
}

// CopyFrom copies src's contents into m. Both must have equal shape.
func (m *Matrix) CopyFrom(src *Matrix) {
	copy(m.data, src.data)
}

// MulVec computes dst <- m * v (gemv, no transpose). dst must have
// length m.rows and must not alias v.
func (m *Matrix) MulVec(v vec.Vector, dst vec.Vector) {
	for i := 0; i < m.rows; i++ {
		var sum float64
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, a := range row {
			sum += a * v[j]
		}
		dst[i] = sum
	}
}

// MulVecTransposeAdd computes dst <- dst + mᵀ * v (transposed gemv,
// accumulating). dst must have length m.cols.
func (m *Matrix) MulVecTransposeAdd(v vec.Vector, dst vec.Vector) {
	for i := 0; i < m.rows; i++ {
		vi := v[i]
		if vi == 0 {
			continue
		}
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, a := range row {
			dst[j] += a * vi
		}
	}
}
