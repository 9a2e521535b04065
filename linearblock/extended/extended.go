package extended

import (
	"fmt"

	"github.com/nathanhack/golay/gf2"
	"github.com/nathanhack/golay/linearblock"
	"github.com/sirupsen/logrus"
)

// Parity block of the (24,12,8) extended Golay code, pieced together from
// the P25 and DMR standards, as well as appendix Q of the IRIG standard.
// Rows are packed MSB-first, 12 bits wide; the rightmost column is each
// row's overall parity bit.
var parityRows = []uint32{
	0b110001110101,
	0b011000111011,
	0b111101101000,
	0b011110110100,
	0b001111011010,
	0b110110011001,
	0b011011001101,
	0b001101100111,
	0b110111000110,
	0b101010010111,
	0b100100111110,
	0b100011101011,
}

//New builds the (24,12,8) extended Golay code tables: the systematic
// generator G = [ I | P ] and both parity check forms, H = [ Pᵀ | I ] and
// the identity form [ I | P ] that the code's self-duality permits.
// Self-duality is verified before any table is published; on any failure no
// Code is returned.
func New() (*linearblock.Code, error) {
	logrus.Debugf("Building extended Golay code tables")

	parity, err := gf2.FromBits(12, 12, parityRows)
	if err != nil {
		return nil, fmt.Errorf("parity block: %w", err)
	}

	G, err := linearblock.Generator(parity)
	if err != nil {
		return nil, err
	}
	if err := linearblock.VerifySelfDual(G); err != nil {
		return nil, err
	}

	H, err := linearblock.ParityCheck(parity)
	if err != nil {
		return nil, err
	}
	HAlt, err := linearblock.AltParityCheck(parity)
	if err != nil {
		return nil, err
	}

	code := &linearblock.Code{
		P:    parity,
		G:    G,
		H:    H,
		HAlt: HAlt,
	}
	if !code.Validate() {
		return nil, fmt.Errorf("extended Golay tables failed G*H.T==0 validation")
	}

	logrus.Debugf("Extended Golay code tables complete")
	return code, nil
}
