// Package review turns raw AI review score trajectories into per-move quality
// categories and per-player statistics.
package review

import (
	"errors"
	"fmt"

	"github.com/online-go/movereview/internal/model"
)

// Categorization errors.
var (
	// ErrMissingScores is returned when a categorizer runs without score data.
	ErrMissingScores = errors.New("review has no scores")
	// ErrUnknownKind is returned for review kinds with no categorizer.
	ErrUnknownKind = errors.New("unknown review kind")
	// ErrUnknownMethod is returned for unsupported full-review methods.
	ErrUnknownMethod = errors.New("unknown categorization method")
)

// Categorizer assigns every scored ply of a review to a quality category.
type Categorizer interface {
	Categorize(rec model.ReviewRecord, align Alignment) (*Categorization, error)
}

// Options tune categorization.
type Options struct {
	Thresholds            model.ThresholdSet
	Method                model.Method
	IncludeNegativeScores bool
}

// NewCategorizer selects the categorizer for a review kind and method.
func NewCategorizer(kind model.ReviewKind, opts Options) (Categorizer, error) {
	switch kind {
	case model.ReviewKindFast:
		return &fastCategorizer{thresholds: opts.Thresholds}, nil
	case model.ReviewKindFull:
		switch opts.Method {
		case model.MethodNew:
			return &fullCategorizer{
				thresholds:      opts.Thresholds,
				includeNegative: opts.IncludeNegativeScores,
			}, nil
		case model.MethodOld, "":
			return &legacyCategorizer{thresholds: opts.Thresholds}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// CategorizedMove is the classification of a single ply.
type CategorizedMove struct {
	Color     model.Color
	Ply       int
	Category  model.Category
	ScoreLoss float64
}

// MoveNumber is the 1-based move number shown to players.
func (m CategorizedMove) MoveNumber() int {
	return m.Ply + 1
}

// Categorization is the output of a categorizer.
type Categorization struct {
	Categories model.CategorySet
	Moves      []CategorizedMove
	Samples    model.ByColor[[]float64]
	Counters   model.ByColor[model.CategoryCounts]
	TotalLoss  model.ByColor[float64]
}

func newCategorization(categories model.CategorySet) *Categorization {
	return &Categorization{Categories: categories}
}

// addLoss folds a score loss into the running total and the median samples.
func (c *Categorization) addLoss(color model.Color, loss float64) {
	*c.TotalLoss.Get(color) += loss
	c.addSample(color, loss)
}

// addSample records a median sample without touching the total.
func (c *Categorization) addSample(color model.Color, sample float64) {
	samples := c.Samples.Get(color)
	*samples = append(*samples, sample)
}

func (c *Categorization) record(ply int, color model.Color, cat model.Category, loss float64) {
	c.Counters.Get(color)[cat]++
	c.Moves = append(c.Moves, CategorizedMove{
		Ply:       ply,
		Color:     color,
		Category:  cat,
		ScoreLoss: loss,
	})
}

// IsFull reports whether the categorization used the full category set.
func (c *Categorization) IsFull() bool {
	return c.Categories.Contains(model.CategoryExcellent)
}

// MovesIn returns the move numbers a player made in a category.
func (c *Categorization) MovesIn(color model.Color, cat model.Category) []int {
	var numbers []int
	for _, m := range c.Moves {
		if m.Color == color && m.Category == cat {
			numbers = append(numbers, m.MoveNumber())
		}
	}
	return numbers
}

// scoreLoss is the number of points the mover lost on ply i. Scores are on a
// single board-relative scale, so the sign flips for black.
func scoreLoss(scores []float64, i int, mover model.Color) float64 {
	diff := scores[i+1] - scores[i]
	if mover == model.Black {
		return -diff
	}
	return diff
}

// cascade returns the first category in the set whose bound exceeds loss.
// Comparisons are strict, so a loss equal to a bound falls to the next category.
func cascade(loss float64, t model.ThresholdSet, categories model.CategorySet) model.Category {
	for _, cat := range categories {
		bound, ok := t.Bound(cat)
		if ok && loss < bound {
			return cat
		}
	}
	return model.CategoryBlunder
}
