package review

import (
	"encoding/json"
	"testing"

	"github.com/online-go/movereview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowFor(t *testing.T, table Table, c model.Category) Row {
	t.Helper()
	for _, r := range table.Rows {
		if r.Category == c {
			return r
		}
	}
	t.Fatalf("no row for %s", c)
	return Row{}
}

func TestBuildTable_FullReviewNewMethod(t *testing.T) {
	// Black loses 0.1, 0.5 and 1.6 points; white loses 5.5.
	game := colored(model.Black, model.White, model.Black, model.Black)
	rec := fullReview([]float64{0.7, 0.6, 6.1, 5.6, 4.0}, game)

	table := BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew})

	require.True(t, table.ShouldShowTable)
	require.Len(t, table.Rows, len(model.FullCategories))

	assert.Equal(t, []int{1}, table.CategorizedMoves.Black[model.CategoryExcellent])
	assert.Equal(t, []int{3}, table.CategorizedMoves.Black[model.CategoryGreat])
	assert.Equal(t, []int{4}, table.CategorizedMoves.Black[model.CategoryInaccuracy])
	assert.Equal(t, []int{2}, table.CategorizedMoves.White[model.CategoryBlunder])
	assert.Empty(t, table.CategorizedMoves.White[model.CategoryExcellent])

	assert.InDelta(t, 0.7, table.AverageScoreLoss.Black, 1e-9)
	assert.InDelta(t, 5.5, table.AverageScoreLoss.White, 1e-9)
	assert.InDelta(t, 0.5, table.MedianScoreLoss.Black, 1e-9)
	assert.InDelta(t, 66.7, table.StrongMoveRate.Black, 1e-9)
	assert.Zero(t, table.StrongMoveRate.White)

	excellent := rowFor(t, table, model.CategoryExcellent)
	assert.Equal(t, Row{
		Category:     model.CategoryExcellent,
		Label:        "Excellent",
		BlackCount:   "1",
		BlackPercent: "33.3",
		WhiteCount:   "0",
		WhitePercent: "0.0",
	}, excellent)

	blunder := rowFor(t, table, model.CategoryBlunder)
	assert.Equal(t, "1", blunder.WhiteCount)
	assert.Equal(t, "100.0", blunder.WhitePercent)

	assert.Equal(t, 4, table.MaxEntries)
	assert.Zero(t, table.MovesPending)
}

func TestBuildTable_RejectedInput(t *testing.T) {
	game := colored(model.Black, model.White)

	t.Run("unrecognized engine", func(t *testing.T) {
		rec := fullReview([]float64{0, 1, 2}, game)
		rec.Engine = "leela"

		table := BuildTable(Input{Record: rec, Game: game})
		assert.True(t, table.ShouldShowTable)
		assert.Empty(t, table.Rows)
		assert.Zero(t, table.MaxEntries)
	})

	t.Run("pending review", func(t *testing.T) {
		rec := model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFull}

		table := BuildTable(Input{Record: rec, Game: game})
		assert.True(t, table.ShouldShowTable)
		assert.Empty(t, table.Rows)
	})

	t.Run("loading", func(t *testing.T) {
		rec := fullReview([]float64{0, 1, 2}, game)

		table := BuildTable(Input{Record: rec, Game: game, IsLoading: true})
		assert.Equal(t, Table{}, table)
	})

	t.Run("unknown method", func(t *testing.T) {
		rec := fullReview([]float64{0, 1, 2}, game)

		table := BuildTable(Input{Record: rec, Game: game, Method: "newest"})
		assert.True(t, table.ShouldShowTable)
		assert.Empty(t, table.Rows)
	})
}

func TestBuildTable_DefaultsToOldMethod(t *testing.T) {
	steps := []step{{model.Black, 0.3}, {model.White, 0.3}}
	game := gameFor(steps)
	rec := fullReview(trajectory(0, steps), game)

	// Without engine candidates the old method grades nothing.
	table := BuildTable(Input{Record: rec, Game: game})

	require.Len(t, table.Rows, len(model.FullCategories))
	for _, row := range table.Rows {
		assert.Equal(t, "0", row.BlackCount)
		assert.Equal(t, "", row.BlackPercent)
	}
	// The skipped plies still feed the averages.
	assert.InDelta(t, 0.3, table.AverageScoreLoss.Black, 1e-9)
}

func TestBuildTable_FastReview(t *testing.T) {
	steps := []step{
		{model.Black, 0.2},
		{model.White, 1.2},
		{model.Black, 2.5},
		{model.White, 9},
	}
	game := gameFor(steps)
	scores := trajectory(0, steps)
	rec := model.ReviewRecord{
		Engine: "katago",
		Kind:   model.ReviewKindFast,
		Scores: scores,
		Moves: map[int]model.MoveDetail{
			2: {Score: scores[2]},
			3: {Score: scores[3]},
			4: {Score: scores[4]},
		},
	}

	table := BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew})

	require.True(t, table.ShouldShowTable)
	labels := make([]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"Good", "Inaccuracy", "Mistake", "Blunder"}, labels)
	assert.Equal(t, "50.0", rowFor(t, table, model.CategoryGood).BlackPercent)
	assert.Equal(t, "50.0", rowFor(t, table, model.CategoryMistake).BlackPercent)
	assert.Equal(t, "1", rowFor(t, table, model.CategoryInaccuracy).WhiteCount)
	assert.Equal(t, "1", rowFor(t, table, model.CategoryBlunder).WhiteCount)
	assert.Zero(t, table.StrongMoveRate.Black)
}

func TestBuildTable_CustomThresholds(t *testing.T) {
	steps := []step{{model.Black, 1.5}}
	game := gameFor(steps)
	rec := fullReview(trajectory(0, steps), game)
	thresholds := model.DefaultThresholds()
	thresholds.Good = 2

	table := BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew, Thresholds: &thresholds})
	assert.Equal(t, []int{1}, table.CategorizedMoves.Black[model.CategoryGood])
}

func TestBuildTable_LossAtGreatBoundaryIsGood(t *testing.T) {
	// Black loses exactly 0.5 (representable in binary); white loses nothing.
	game := colored(model.Black, model.White)
	rec := fullReview([]float64{0, -0.5, -0.5}, game)
	thresholds := model.DefaultThresholds()
	thresholds.Great = 0.5

	table := BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew, Thresholds: &thresholds})
	assert.Equal(t, []int{1}, table.CategorizedMoves.Black[model.CategoryGood])
	assert.Empty(t, table.CategorizedMoves.Black[model.CategoryGreat])
	assert.Equal(t, []int{2}, table.CategorizedMoves.White[model.CategoryExcellent])

	thresholds.Great = 0.50001
	table = BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew, Thresholds: &thresholds})
	assert.Equal(t, []int{1}, table.CategorizedMoves.Black[model.CategoryGreat])
}

func TestBuildTable_JSON(t *testing.T) {
	game := colored(model.Black, model.White, model.Black, model.Black)
	rec := fullReview([]float64{0.7, 0.6, 6.1, 5.5, 4.0}, game)
	table := BuildTable(Input{Record: rec, Game: game, Method: model.MethodNew})

	data, err := json.Marshal(table)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "average_score_loss")
	assert.Contains(t, decoded, "should_show_table")

	moves, ok := decoded["categorized_moves"].(map[string]any)
	require.True(t, ok)
	black, ok := moves["black"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, black, "Excellent")
}
