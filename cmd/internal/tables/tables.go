package tables

import (
	"fmt"

	"github.com/nathanhack/golay/linearblock"
	"github.com/nathanhack/golay/linearblock/extended"
	"github.com/nathanhack/golay/linearblock/standard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Verbose bool
)

var StandardRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := standard.New()
	if err != nil {
		fmt.Println("Unable to build standard Golay tables: ", err)
		return
	}

	fmt.Println("core transpose:")
	printBits(code.P.T().Bits(), code.P.T().Width())

	fmt.Println("parity check:")
	printBits(code.H.Bits(), code.H.Width())

	fmt.Println("parity check transpose:")
	printBits(code.H.T().Bits(), code.ParitySymbols())

	fmt.Println("syndromes:")
	printBits(code.Syndromes, code.ParitySymbols())

	reportDims(code)
}

var ExtendedRun = func(cmd *cobra.Command, args []string) {
	setLevel()

	code, err := extended.New()
	if err != nil {
		fmt.Println("Unable to build extended Golay tables: ", err)
		return
	}

	fmt.Println("core transpose:")
	printBits(code.P.T().Bits(), code.P.Width())

	fmt.Println("core:")
	printBits(code.P.Bits(), code.P.Width())

	fmt.Println("parity check:")
	printBits(code.H.Bits(), code.H.Width())

	fmt.Println("alt parity check:")
	printBits(code.HAlt.Bits(), code.HAlt.Width())

	reportDims(code)
}

func setLevel() {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func printBits(rows []uint32, width int) {
	for _, r := range rows {
		fmt.Printf("0b%0*b,\n", width, r)
	}
}

func reportDims(code *linearblock.Code) {
	logrus.Debugf("(%v,%v) code, rate %0.02f", code.CodewordLength(), code.MessageLength(), code.CodeRate())
}
