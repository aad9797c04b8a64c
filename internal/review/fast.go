package review

import (
	"slices"

	"github.com/online-go/movereview/internal/model"
)

// fastCategorizer grades fast reviews, which only re-score the worst few moves.
type fastCategorizer struct {
	thresholds model.ThresholdSet
}

func (f *fastCategorizer) Categorize(rec model.ReviewRecord, align Alignment) (*Categorization, error) {
	if !rec.HasScores() {
		return nil, ErrMissingScores
	}

	// The targeted re-scores are more reliable than the initial full-game pass.
	scores := slices.Clone(rec.Scores)
	for idx, detail := range rec.Moves {
		if idx >= 0 && idx < len(scores) {
			scores[idx] = detail.Score
		}
	}

	result := newCategorization(model.FastCategories)
	for i := align.HandicapOffset; i < len(scores)-1; i++ {
		mover, ok := align.Mover(i)
		if !ok {
			continue
		}

		loss := scoreLoss(scores, i, mover)
		result.addLoss(mover, loss)
		result.record(i, mover, cascade(loss, f.thresholds, model.FastCategories), loss)
	}

	return result, nil
}
