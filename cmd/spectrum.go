package cmd

import (
	"github.com/nathanhack/golay/cmd/internal/spectrum"

	"github.com/spf13/cobra"
)

// spectrumCmd represents the spectrum command
var spectrumCmd = &cobra.Command{
	Use:     "spectrum",
	Aliases: []string{"s"},
	Short:   "Weight spectrum of a Golay code",
	Long:    `Enumerates all codewords and reports the weight distribution and minimum distance, a full integrity check of the generated tables`,
}

// spectrumStandardCmd represents the standard command
var spectrumStandardCmd = &cobra.Command{
	Use:     "standard",
	Aliases: []string{"std", "s"},
	Short:   "Weight spectrum of the standard (23,12,7) Golay code",
	Long:    `Weight spectrum of the standard (23,12,7) Golay code`,
	Run:     spectrum.StandardRun,
}

// spectrumExtendedCmd represents the extended command
var spectrumExtendedCmd = &cobra.Command{
	Use:     "extended",
	Aliases: []string{"ext", "e"},
	Short:   "Weight spectrum of the extended (24,12,8) Golay code",
	Long:    `Weight spectrum of the extended (24,12,8) Golay code`,
	Run:     spectrum.ExtendedRun,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumCmd.AddCommand(spectrumStandardCmd)
	spectrumCmd.AddCommand(spectrumExtendedCmd)

	for _, c := range []*cobra.Command{spectrumStandardCmd, spectrumExtendedCmd} {
		c.Flags().UintVarP(&spectrum.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
		c.Flags().BoolVarP(&spectrum.Verbose, "verbose", "v", false, "enable verbose info and a progress bar")
		c.Flags().StringVarP(&spectrum.ChartFile, "chart", "c", "", "also render the weight distribution to this HTML file")
	}
}
