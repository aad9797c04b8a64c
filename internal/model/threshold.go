package model

// ThresholdSet holds per-category upper bounds, in points of score loss.
// A move whose loss is strictly below a bound qualifies for that category or a
// better one. Blunder has no bound.
type ThresholdSet struct {
	Excellent  float64 `json:"excellent" validate:"gte=0"`
	Great      float64 `json:"great" validate:"gte=0"`
	Good       float64 `json:"good" validate:"gte=0"`
	Inaccuracy float64 `json:"inaccuracy" validate:"gte=0"`
	Mistake    float64 `json:"mistake" validate:"gte=0"`
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		Excellent:  0.2,
		Great:      0.6,
		Good:       1.0,
		Inaccuracy: 2.0,
		Mistake:    5.0,
	}
}

// IsMonotonic reports whether the bounds strictly increase from Excellent to Mistake.
func (t ThresholdSet) IsMonotonic() bool {
	return t.Excellent < t.Great &&
		t.Great < t.Good &&
		t.Good < t.Inaccuracy &&
		t.Inaccuracy < t.Mistake
}

// Bound returns the upper bound for a category. Blunder returns false.
func (t ThresholdSet) Bound(c Category) (float64, bool) {
	switch c {
	case CategoryExcellent:
		return t.Excellent, true
	case CategoryGreat:
		return t.Great, true
	case CategoryGood:
		return t.Good, true
	case CategoryInaccuracy:
		return t.Inaccuracy, true
	case CategoryMistake:
		return t.Mistake, true
	default:
		return 0, false
	}
}
