package review

import (
	"log/slog"
	"strconv"

	"github.com/online-go/movereview/internal/model"
)

// Input is everything needed to build a move category table.
type Input struct {
	Thresholds            *model.ThresholdSet
	Game                  model.GameContext
	Engine                string
	Method                model.Method
	Record                model.ReviewRecord
	IsLoading             bool
	IncludeNegativeScores bool
}

// Row is one display-ready line of the category table.
type Row struct {
	Label        string         `json:"label"`
	BlackCount   string         `json:"black_count"`
	BlackPercent string         `json:"black_percent"`
	WhiteCount   string         `json:"white_count"`
	WhitePercent string         `json:"white_percent"`
	Category     model.Category `json:"category"`
}

// Table is the presentation-ready result of categorizing a review.
type Table struct {
	CategorizedMoves model.ByColor[map[model.Category][]int] `json:"categorized_moves"`
	Rows             []Row                                    `json:"rows"`
	Summary
	MovesPending    int  `json:"moves_pending"`
	MaxEntries      int  `json:"max_entries"`
	ShouldShowTable bool `json:"should_show_table"`
}

// BuildTable runs the whole pipeline: validation, alignment, categorization
// and aggregation. It never fails; unusable input yields an empty table.
func BuildTable(in Input) Table {
	if in.IsLoading {
		return Table{}
	}

	validation := NewValidator(in.Engine).Validate(in.Record, in.Game)
	if !validation.IsValid {
		return Table{ShouldShowTable: validation.ShouldShowTable}
	}

	thresholds := model.DefaultThresholds()
	if in.Thresholds != nil {
		thresholds = *in.Thresholds
	}

	categorizer, err := NewCategorizer(in.Record.Kind, Options{
		Thresholds:            thresholds,
		Method:                in.Method,
		IncludeNegativeScores: in.IncludeNegativeScores,
	})
	if err != nil {
		slog.Debug("No categorizer for review", "error", err)
		return Table{ShouldShowTable: true}
	}

	cat, err := categorizer.Categorize(in.Record, Align(in.Game))
	if err != nil {
		slog.Debug("Categorization failed", "error", err)
		return Table{ShouldShowTable: true}
	}

	return newTable(cat, len(in.Record.Scores)-1)
}

func newTable(cat *Categorization, maxEntries int) Table {
	t := Table{
		Summary:         Aggregate(cat),
		MaxEntries:      maxEntries,
		ShouldShowTable: true,
		// Pending analysis is not tracked yet.
		MovesPending: 0,
	}

	black := cat.Counters.Get(model.Black)
	white := cat.Counters.Get(model.White)
	blackTotal, whiteTotal := black.Total(), white.Total()

	t.CategorizedMoves.Black = make(map[model.Category][]int)
	t.CategorizedMoves.White = make(map[model.Category][]int)

	for _, c := range cat.Categories {
		t.Rows = append(t.Rows, Row{
			Category:     c,
			Label:        c.String(),
			BlackCount:   strconv.Itoa(black[c]),
			BlackPercent: Percent(black[c], blackTotal),
			WhiteCount:   strconv.Itoa(white[c]),
			WhitePercent: Percent(white[c], whiteTotal),
		})
		t.CategorizedMoves.Black[c] = cat.MovesIn(model.Black, c)
		t.CategorizedMoves.White[c] = cat.MovesIn(model.White, c)
	}

	return t
}
