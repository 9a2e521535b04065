package linearblock

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/golay/gf2"
	"github.com/nathanhack/threadpool"
)

//SpectrumStats holds running statistics over the enumerated codeword weights.
type SpectrumStats struct {
	Weight avgstd.AvgStd
}

func (s SpectrumStats) String() string {
	return fmt.Sprintf("{Weight:%0.02f(+/-%0.02f)}", s.Weight.Mean, math.Sqrt(s.Weight.SampledVariance()))
}

//Spectrum enumerates every message m and tallies the weight of m*G,
// returning the weight histogram indexed 0..CodewordLength(). The smallest
// nonzero index with a count is the code's minimum distance, so this doubles
// as an integrity check over the published tables.
func Spectrum(ctx context.Context, code *Code, threads int, showProgress bool) ([]int, SpectrumStats, error) {
	k := code.MessageLength()
	n := code.CodewordLength()
	if k > 30 {
		return nil, SpectrumStats{}, fmt.Errorf("%w: message length %v too large to enumerate", gf2.ErrDimensionMismatch, k)
	}
	total := 1 << uint(k)

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(total)
	}

	histogram := make([]int, n+1)
	stats := SpectrumStats{}
	var firstErr error
	mux := sync.Mutex{}

	pool := threadpool.NewFixedSize(ctx, threads, total)
	for w := 0; w < total; w++ {
		message := uint32(w)
		pool.Add(func() {
			if showProgress {
				bar.Increment()
			}
			m, err := gf2.FromBits(1, k, []uint32{message})
			var codeword *gf2.Matrix
			if err == nil {
				codeword, err = gf2.Mul(m, code.G)
			}
			if err != nil {
				mux.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mux.Unlock()
				return
			}

			weight := bits.OnesCount32(codeword.RowBits(0))
			mux.Lock()
			histogram[weight]++
			stats.Weight.Update(float64(weight))
			mux.Unlock()
		})
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}

	if firstErr != nil {
		return nil, SpectrumStats{}, firstErr
	}
	select {
	case <-ctx.Done():
		return nil, SpectrumStats{}, ctx.Err()
	default:
	}
	return histogram, stats, nil
}

//MinDistance returns the smallest nonzero codeword weight in a Spectrum
// histogram, or 0 when only the zero codeword was counted.
func MinDistance(histogram []int) int {
	for w := 1; w < len(histogram); w++ {
		if histogram[w] > 0 {
			return w
		}
	}
	return 0
}
