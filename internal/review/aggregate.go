package review

import (
	"fmt"
	"math"
	"slices"

	"github.com/online-go/movereview/internal/model"
)

// Summary holds the per-player statistics derived from a categorization.
type Summary struct {
	AverageScoreLoss model.ByColor[float64] `json:"average_score_loss"`
	MedianScoreLoss  model.ByColor[float64] `json:"median_score_loss"`
	StrongMoveRate   model.ByColor[float64] `json:"strong_move_rate"`
}

// Aggregate computes average and median score loss and the strong move rate.
func Aggregate(c *Categorization) Summary {
	var s Summary
	for _, color := range []model.Color{model.Black, model.White} {
		samples := *c.Samples.Get(color)
		if len(samples) > 0 {
			*s.AverageScoreLoss.Get(color) = round1(*c.TotalLoss.Get(color) / float64(len(samples)))
		}
		*s.MedianScoreLoss.Get(color) = round1(Median(samples))

		// Fast reviews never grade the good moves, so they have no strong move rate.
		if c.IsFull() {
			counts := c.Counters.Get(color)
			if total := counts.Total(); total > 0 {
				*s.StrongMoveRate.Get(color) = round1(100 * float64(counts.Strong()) / float64(total))
			}
		}
	}
	return s
}

// Median returns the median of samples, or 0 when there are none.
func Median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Percent formats count as a percentage of total with one decimal. It returns
// the empty string when total is zero so "no data" differs from "0.0".
func Percent(count, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", 100*float64(count)/float64(total))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
