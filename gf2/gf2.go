package gf2

import (
	"errors"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

var (
	//ErrInvalidDimension is returned when a requested dimension is not positive.
	ErrInvalidDimension = errors.New("gf2: dimensions must be > 0")

	//ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	//ErrNonBinaryEntry is returned when an entry outside {0,1} is supplied.
	ErrNonBinaryEntry = errors.New("gf2: entries must be 0 or 1")
)

//Matrix is a fixed-size matrix over GF(2). Matrices are values: every
// operation returns a new Matrix and never mutates its operands. All
// arithmetic is exact integer arithmetic reduced mod 2.
type Matrix struct {
	rows, cols int
	bits       mat.SparseMat
}

//New creates a rows x cols Matrix. When values are given there must be
// exactly rows*cols of them, in row-major order, each 0 or 1.
func New(rows, cols int, values ...int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: found %vx%v", ErrInvalidDimension, rows, cols)
	}
	if len(values) != 0 && len(values) != rows*cols {
		return nil, fmt.Errorf("%w: expected %v values but found %v", ErrDimensionMismatch, rows*cols, len(values))
	}
	for _, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: found %v", ErrNonBinaryEntry, v)
		}
	}
	return &Matrix{rows, cols, mat.CSRMat(rows, cols, values...)}, nil
}

//Identity creates the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: found %v", ErrInvalidDimension, n)
	}
	return &Matrix{n, n, mat.CSRIdentity(n)}, nil
}

//FromBits creates a rows x cols Matrix from MSB-first packed row values:
// bit cols-1 of bits[i] is entry (i,0). Rows wider than cols are rejected.
func FromBits(rows, cols int, bits []uint32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || cols > 32 {
		return nil, fmt.Errorf("%w: found %vx%v", ErrInvalidDimension, rows, cols)
	}
	if len(bits) != rows {
		return nil, fmt.Errorf("%w: expected %v rows but found %v", ErrDimensionMismatch, rows, len(bits))
	}
	m := mat.CSRMat(rows, cols)
	for i, b := range bits {
		if cols < 32 && b>>uint(cols) != 0 {
			return nil, fmt.Errorf("%w: row %v wider than %v bits", ErrNonBinaryEntry, i, cols)
		}
		for j := 0; j < cols; j++ {
			if b&(1<<uint(cols-1-j)) != 0 {
				m.Set(i, j, 1)
			}
		}
	}
	return &Matrix{rows, cols, m}, nil
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) At(i, j int) int {
	return m.bits.At(i, j)
}

//Row returns a copy of row i.
func (m *Matrix) Row(i int) mat.SparseVector {
	return m.bits.Row(i)
}

//T returns the transpose.
func (m *Matrix) T() *Matrix {
	return &Matrix{m.cols, m.rows, m.bits.T()}
}

//HStack concatenates a and b side by side. Both must have the same number
// of rows; columns of a come first.
func HStack(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows {
		return nil, fmt.Errorf("%w: row counts %v and %v", ErrDimensionMismatch, a.rows, b.rows)
	}
	h := mat.CSRMat(a.rows, a.cols+b.cols)
	h.SetMatrix(a.bits, 0, 0)
	h.SetMatrix(b.bits, 0, a.cols)
	return &Matrix{a.rows, a.cols + b.cols, h}, nil
}

//Dot is the mod 2 inner product of two equal length vectors.
func Dot(a, b mat.SparseVector) (int, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: vector lengths %v and %v", ErrDimensionMismatch, a.Len(), b.Len())
	}
	return a.Dot(b) & 1, nil
}

//Mul is the mod 2 matrix product a*b. Entry (i,j) is the Dot of row i of a
// with column j of b.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: %vx%v times %vx%v", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	p := mat.CSRMat(a.rows, b.cols)
	for j := 0; j < b.cols; j++ {
		col := b.bits.Column(j)
		for i := 0; i < a.rows; i++ {
			if a.bits.Row(i).Dot(col)&1 == 1 {
				p.Set(i, j, 1)
			}
		}
	}
	return &Matrix{a.rows, b.cols, p}, nil
}

//RowBits packs row i MSB-first: entry (i,0) ends up in bit Width()-1.
// Only defined for matrices with Width() <= 32.
func (m *Matrix) RowBits(i int) uint32 {
	var b uint32
	for j := 0; j < m.cols; j++ {
		b = b<<1 | uint32(m.bits.At(i, j))
	}
	return b
}

//Bits packs every row MSB-first, the inverse of FromBits.
func (m *Matrix) Bits() []uint32 {
	bits := make([]uint32, m.rows)
	for i := range bits {
		bits[i] = m.RowBits(i)
	}
	return bits
}

//Width is the number of bits in each packed row, for display purposes.
func (m *Matrix) Width() int {
	return m.cols
}

func (m *Matrix) Equals(other *Matrix) bool {
	if other == nil {
		return false
	}
	return m.rows == other.rows && m.cols == other.cols && m.bits.Equals(other.bits)
}

func (m *Matrix) String() string {
	return m.bits.String()
}
