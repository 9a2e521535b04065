package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/tables"

	"github.com/spf13/cobra"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:     "tables",
	Aliases: []string{"t"},
	Short:   "Emit the verified code tables",
	Long:    `Emit the verified matrices and syndrome table as packed binary row values`,
}

// tablesStandardCmd represents the standard command
var tablesStandardCmd = &cobra.Command{
	Use:     "standard",
	Aliases: []string{"std", "s"},
	Short:   "Tables for the standard (23,12,7) Golay code",
	Long:    `Tables for the standard (23,12,7) Golay code: generator, parity check and the cyclic single-error syndrome table`,
	Run:     tables.StandardRun,
}

// tablesExtendedCmd represents the extended command
var tablesExtendedCmd = &cobra.Command{
	Use:     "extended",
	Aliases: []string{"ext", "e"},
	Short:   "Tables for the extended (24,12,8) Golay code",
	Long:    `Tables for the extended (24,12,8) Golay code: generator and both parity check forms, self-duality verified`,
	Run:     tables.ExtendedRun,
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.AddCommand(tablesStandardCmd)
	tablesStandardCmd.Flags().BoolVarP(&tables.Verbose, "verbose", "v", false, "enable verbose info")

	tablesCmd.AddCommand(tablesExtendedCmd)
	tablesExtendedCmd.Flags().BoolVarP(&tables.Verbose, "verbose", "v", false, "enable verbose info")
}
