package standard

import (
	"fmt"

	"github.com/nathanhack/golay/gf2"
	"github.com/nathanhack/golay/linearblock"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Parity block of the (23,12,7) standard Golay code: the extended code's
// block with its rightmost (overall parity) column removed. Rows are packed
// MSB-first, 11 bits wide.
var parityRows = []uint32{
	0b11000111010,
	0b01100011101,
	0b11110110100,
	0b01111011010,
	0b00111101101,
	0b11011001100,
	0b01101100110,
	0b00110110011,
	0b11011100011,
	0b10101001011,
	0b10010011111,
	0b10001110101,
}

//New builds the (23,12,7) standard Golay code tables: the systematic
// generator G = [ I | P ], the parity check H = [ Pᵀ | I ] and the 12-entry
// cyclic single-error syndrome table used by single-error-pattern decoders.
// Every table is checked before it is published; on any failure no Code is
// returned.
func New() (*linearblock.Code, error) {
	logrus.Debugf("Building standard Golay code tables")

	parity, err := gf2.FromBits(12, 11, parityRows)
	if err != nil {
		return nil, fmt.Errorf("parity block: %w", err)
	}

	G, err := linearblock.Generator(parity)
	if err != nil {
		return nil, err
	}

	H, err := linearblock.ParityCheck(parity)
	if err != nil {
		return nil, err
	}

	syndromes, err := linearblock.SyndromeTable(H)
	if err != nil {
		return nil, err
	}
	for i, s := range syndromes {
		if s == 0 || slices.Contains(syndromes[:i], s) {
			return nil, fmt.Errorf("%w: index %v", linearblock.ErrSyndromeCollision, i)
		}
	}

	code := &linearblock.Code{
		P:         parity,
		G:         G,
		H:         H,
		Syndromes: syndromes,
	}
	if !code.Validate() {
		return nil, fmt.Errorf("standard Golay tables failed G*H.T==0 validation")
	}

	logrus.Debugf("Standard Golay code tables complete")
	return code, nil
}
