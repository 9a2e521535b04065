package spectrum

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/golay/linearblock"
	"github.com/nathanhack/golay/linearblock/extended"
	"github.com/nathanhack/golay/linearblock/standard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	Threads   uint
	Verbose   bool
	ChartFile string
)

var StandardRun = func(cmd *cobra.Command, args []string) {
	run("standard", standard.New)
}

var ExtendedRun = func(cmd *cobra.Command, args []string) {
	run("extended", extended.New)
}

func run(name string, build func() (*linearblock.Code, error)) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	code, err := build()
	if err != nil {
		fmt.Printf("Unable to build %v Golay tables: %v\n", name, err)
		return
	}

	histogram, stats, err := linearblock.Spectrum(ctx, code, int(Threads), Verbose)
	if err != nil {
		fmt.Println("Unable to enumerate codewords: ", err)
		return
	}

	fmt.Printf("(%v,%v) %v Golay code\n", code.CodewordLength(), code.MessageLength(), name)
	for w, count := range histogram {
		if count == 0 {
			continue
		}
		fmt.Printf("weight %2d: %v\n", w, count)
	}
	fmt.Println("minimum distance: ", linearblock.MinDistance(histogram))

	weights, counts := histogramSeries(histogram)
	mean := stat.Mean(weights, counts)
	stddev := math.Sqrt(stat.Variance(weights, counts))
	fmt.Printf("weights: %0.02f(+/-%0.02f) over %v codewords %v\n", mean, stddev, stats.Weight.Count, stats)

	if ChartFile != "" {
		if err := renderChart(name, histogram); err != nil {
			fmt.Println("Unable to render chart: ", err)
		}
	}
}

func histogramSeries(histogram []int) (weights, counts []float64) {
	weights = make([]float64, len(histogram))
	counts = make([]float64, len(histogram))
	for w, count := range histogram {
		weights[w] = float64(w)
		counts[w] = float64(count)
	}
	return weights, counts
}

func renderChart(name string, histogram []int) error {
	f, err := os.Create(ChartFile)
	if err != nil {
		return err
	}
	defer f.Close()

	// create a new bar instance
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Weight Distribution",
			Subtitle: name + " Golay code",
			Left:     "20%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Codeword Weight",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Codewords",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	names := make([]string, len(histogram))
	data := make([]opts.BarData, len(histogram))
	for w, count := range histogram {
		names[w] = fmt.Sprint(w)
		data[w] = opts.BarData{Value: count}
	}
	bar.SetXAxis(names)
	bar.AddSeries(name, data)

	return bar.Render(f)
}
