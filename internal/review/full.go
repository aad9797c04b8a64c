package review

import (
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/model"
)

// fullCategorizer is the current threshold-only algorithm for full reviews.
type fullCategorizer struct {
	thresholds      model.ThresholdSet
	includeNegative bool
}

func (f *fullCategorizer) Categorize(rec model.ReviewRecord, align Alignment) (*Categorization, error) {
	result := newCategorization(model.FullCategories)
	skipped := 0

	for i := align.HandicapOffset; i < len(rec.Scores)-1; i++ {
		mover, ok := align.Mover(i)
		if !ok {
			continue
		}

		// Full reviews stream in; plies without analysis on both sides wait.
		if _, ok := rec.Moves[i]; !ok {
			skipped++
			continue
		}
		if _, ok := rec.Moves[i+1]; !ok {
			skipped++
			continue
		}

		loss := scoreLoss(rec.Scores, i, mover)
		if loss < 0 && !f.includeNegative {
			// Keep one sample per move so the median stays aligned with the move count.
			result.addSample(mover, 0)
		} else {
			result.addLoss(mover, loss)
		}
		result.record(i, mover, cascade(loss, f.thresholds, model.FullCategories), loss)
	}

	if skipped > 0 {
		common.LogDebug("Skipped plies without analysis", common.Fields{"count": skipped})
	}

	return result, nil
}
