package linearblock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathanhack/golay/gf2"
	mat "github.com/nathanhack/sparsemat"
)

var (
	//ErrNonSquareParity is returned when the identity-form parity check is
	// requested for a parity block that is not square.
	ErrNonSquareParity = errors.New("linearblock: parity block must be square")

	//ErrSyndromeCollision is returned when the single-error syndromes are not
	// all nonzero and pairwise distinct, which single-error correction requires.
	ErrSyndromeCollision = errors.New("linearblock: single-error syndromes must be nonzero and distinct")
)

//SelfDualityError reports the first generator row pair with nonzero mod 2
// inner product. It indicates a malformed parity constant, not a runtime
// condition.
type SelfDualityError struct {
	R, Q int
}

func (e *SelfDualityError) Error() string {
	return fmt.Sprintf("linearblock: generator rows %v and %v are not orthogonal", e.R, e.Q)
}

//Generator builds the systematic generator matrix G = [ I | P ] from the
// parity block P.
func Generator(parity *gf2.Matrix) (*gf2.Matrix, error) {
	rows, _ := parity.Dims()
	ident, err := gf2.Identity(rows)
	if err != nil {
		return nil, err
	}
	return gf2.HStack(ident, parity)
}

//ParityCheck derives the parity check matrix H = [ Pᵀ | I ] from the parity
// block P. For a k x m parity block the result is m x (k+m).
func ParityCheck(parity *gf2.Matrix) (*gf2.Matrix, error) {
	_, cols := parity.Dims()
	ident, err := gf2.Identity(cols)
	if err != nil {
		return nil, err
	}
	return gf2.HStack(parity.T(), ident)
}

//AltParityCheck derives the parity check matrix H = [ I | P ]. Because the
// extended Golay code is self-dual its generator doubles as a parity check,
// so this form is only valid when the parity block is square.
func AltParityCheck(parity *gf2.Matrix) (*gf2.Matrix, error) {
	rows, cols := parity.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: found %vx%v", ErrNonSquareParity, rows, cols)
	}
	ident, err := gf2.Identity(rows)
	if err != nil {
		return nil, err
	}
	return gf2.HStack(ident, parity)
}

//AppendOverallParity extends the parity block with one more column holding
// each row's overall parity bit: the bit that makes the row's weight odd.
// Applied to the standard Golay parity block it produces the extended one.
func AppendOverallParity(parity *gf2.Matrix) (*gf2.Matrix, error) {
	rows, cols := parity.Dims()
	values := make([]int, rows)
	for i := range values {
		weight := 0
		for j := 0; j < cols; j++ {
			weight += parity.At(i, j)
		}
		if weight%2 == 0 {
			values[i] = 1
		}
	}
	extra, err := gf2.New(rows, 1, values...)
	if err != nil {
		return nil, err
	}
	return gf2.HStack(parity, extra)
}

//VerifySelfDual checks that every generator row pair (r,q) with r <= q has
// mod 2 inner product zero and returns a *SelfDualityError naming the first
// offending pair otherwise.
func VerifySelfDual(G *gf2.Matrix) error {
	rows, _ := G.Dims()
	for r := 0; r < rows; r++ {
		for q := r; q < rows; q++ {
			d, err := gf2.Dot(G.Row(r), G.Row(q))
			if err != nil {
				return err
			}
			if d != 0 {
				return &SelfDualityError{R: r, Q: q}
			}
		}
	}
	return nil
}

//SyndromeTable computes the syndrome of every cyclic single-bit error
// pattern against the m x n parity check H. The canonical pattern has its
// single 1 at index k-1 where k = n-m; pattern i is that vector rotated by i,
// and its syndrome e·Hᵀ is packed MSB-first into a uint32 of Width() m.
func SyndromeTable(H *gf2.Matrix) ([]uint32, error) {
	m, n := H.Dims()
	k := n - m
	if k <= 0 {
		return nil, fmt.Errorf("%w: parity check shape == (rows, cols) where rows < cols required but found %vx%v", gf2.ErrDimensionMismatch, m, n)
	}

	ht := H.T()
	canonical := make([]int, n)
	canonical[k-1] = 1

	table := make([]uint32, 0, k)
	for i := 0; i < k; i++ {
		e, err := gf2.New(1, n, rotate(canonical, i)...)
		if err != nil {
			return nil, err
		}
		s, err := gf2.Mul(e, ht)
		if err != nil {
			return nil, err
		}
		table = append(table, s.RowBits(0))
	}
	return table, nil
}

//rotate returns a copy of v cyclically shifted so that out[j] = v[(j+n) mod len(v)]:
// each element moves n places toward index 0, wrapping past the front to the
// back. n must be non-negative.
func rotate(v []int, n int) []int {
	out := make([]int, len(v))
	for j := range v {
		out[j] = v[(j+n)%len(v)]
	}
	return out
}

//Code holds the published tables for one Golay parameterization. All fields
// are read-only once built; constructors never return a partially checked
// Code.
type Code struct {
	P         *gf2.Matrix //the parity block the tables were derived from
	G         *gf2.Matrix //systematic generator [ I | P ]
	H         *gf2.Matrix //parity check [ Pᵀ | I ]
	HAlt      *gf2.Matrix //identity-form parity check [ I | P ], extended code only
	Syndromes []uint32    //cyclic single-error syndromes, standard code only
}

func (c *Code) MessageLength() int {
	k, _ := c.G.Dims()
	return k
}

func (c *Code) ParitySymbols() int {
	m, _ := c.H.Dims()
	return m
}

func (c *Code) CodewordLength() int {
	_, n := c.H.Dims()
	return n
}

func (c *Code) CodeRate() float64 {
	return float64(c.MessageLength()) / float64(c.CodewordLength())
}

//Validate will test if this code satisfies G*H.T=0, where G is the generator
// matrix and H.T is the transpose of H
func (c *Code) Validate() bool {
	rows, _ := c.G.Dims()
	hrows, _ := c.H.Dims()

	cache := make([]mat.SparseVector, hrows)
	for i := 0; i < hrows; i++ {
		cache[i] = c.H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := c.G.Row(i)
		for j := 0; j < hrows; j++ {
			//equiv to G*H.T
			d, err := gf2.Dot(row, cache[j])
			if err != nil || d != 0 {
				return false
			}
		}
	}

	return true
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(c.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(c.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
