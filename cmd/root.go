package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "golay",
	Short: "Generates Golay code matrices and decoder tables",
	Long: `Generates the generator matrix, parity check matrices and single-error
syndrome table for the standard (23,12,7) and extended (24,12,8) binary Golay
codes, verified before anything is emitted.`,
}

//Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}
