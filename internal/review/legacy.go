package review

import (
	"math"

	"github.com/online-go/movereview/internal/model"
)

const (
	// candidateLimit is how many engine branches are compared with the played move.
	candidateLimit = 6
	// maxGreatVisitFloor caps the visits a secondary candidate needs to earn Great.
	maxGreatVisitFloor = 50
)

// legacyCategorizer is the original full-review algorithm. It rewards moves
// that match the engine's candidates before falling back to thresholds.
type legacyCategorizer struct {
	thresholds model.ThresholdSet
}

func (l *legacyCategorizer) Categorize(rec model.ReviewRecord, align Alignment) (*Categorization, error) {
	result := newCategorization(model.FullCategories)
	visitFloor := math.Min(maxGreatVisitFloor, 0.1*float64(rec.Strength))

	for i := align.HandicapOffset; i < len(rec.Scores)-1; i++ {
		mover, ok := align.Mover(i)
		if !ok {
			continue
		}

		// Totals include plies skipped below; the displayed mean and median
		// have always been computed this way.
		loss := scoreLoss(rec.Scores, i, mover)
		result.addLoss(mover, loss)

		position, ok := rec.Moves[i]
		if !ok || len(position.Branches) == 0 {
			continue
		}
		best, ok := position.Branches[0].FirstMove()
		if !ok {
			continue
		}
		next, ok := rec.Moves[i+1]
		if !ok || next.Move.IsPass() {
			continue
		}

		played := next.Move
		var cat model.Category
		switch {
		case played == best:
			cat = model.CategoryExcellent
		case matchesCandidate(position.Branches, played, visitFloor):
			cat = model.CategoryGreat
		default:
			cat = cascade(loss, l.thresholds, model.FastCategories)
		}
		result.record(i, mover, cat, loss)
	}

	return result, nil
}

// matchesCandidate reports whether played is one of the secondary candidates
// with enough visits behind it.
func matchesCandidate(branches []model.Branch, played model.Move, visitFloor float64) bool {
	limit := min(len(branches), candidateLimit)
	for _, branch := range branches[1:limit] {
		move, ok := branch.FirstMove()
		if !ok || move != played {
			continue
		}
		if float64(branch.Visits) >= visitFloor {
			return true
		}
	}
	return false
}
