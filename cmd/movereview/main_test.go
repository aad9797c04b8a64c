package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullReview is a three-move game in which every move matches the engine's
// top candidate.
const fullReview = `{
  "review": {
    "engine": "KataGo 1.15.3",
    "type": "full",
    "strength": 1000,
    "scores": [0, -0.1, 0.4, 3.4],
    "moves": {
      "0": {"score": 0, "move": {"x": -1, "y": -1}, "branches": [{"moves": [{"x": 3, "y": 3}], "visits": 500}]},
      "1": {"score": -0.1, "move": {"x": 3, "y": 3}, "branches": [{"moves": [{"x": 15, "y": 15}], "visits": 500}]},
      "2": {"score": 0.4, "move": {"x": 15, "y": 15}, "branches": [{"moves": [{"x": 15, "y": 3}], "visits": 500}]},
      "3": {"score": 3.4, "move": {"x": 15, "y": 3}}
    }
  },
  "game": {
    "plies": [
      {"color": "black", "move": {"x": 3, "y": 3}},
      {"color": "white", "move": {"x": 15, "y": 15}},
      {"color": "black", "move": {"x": 15, "y": 3}}
    ]
  }
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeReview(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

type tableJSON struct {
	CategorizedMoves struct {
		Black map[string][]int `json:"black"`
		White map[string][]int `json:"white"`
	} `json:"categorized_moves"`
	Rows []struct {
		Label      string `json:"label"`
		BlackCount string `json:"black_count"`
		WhiteCount string `json:"white_count"`
	} `json:"rows"`
	MedianScoreLoss struct {
		Black float64 `json:"black"`
	} `json:"median_score_loss"`
	ShouldShowTable bool `json:"should_show_table"`
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "movereview dev\n", out)
}

func TestCategorize_JSON(t *testing.T) {
	path := writeReview(t, t.TempDir(), "game.json", fullReview)

	out, err := execute(t, "categorize", path, "--format", "json")
	require.NoError(t, err)

	var table tableJSON
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.True(t, table.ShouldShowTable)
	require.Len(t, table.Rows, 6)

	// The old method credits moves that match the top candidate.
	assert.Equal(t, "Excellent", table.Rows[0].Label)
	assert.Equal(t, "2", table.Rows[0].BlackCount)
	assert.Equal(t, "1", table.Rows[0].WhiteCount)
	assert.Equal(t, []int{1, 3}, table.CategorizedMoves.Black["Excellent"])
}

func TestCategorize_NewMethodFlags(t *testing.T) {
	path := writeReview(t, t.TempDir(), "game.json", fullReview)

	out, err := execute(t, "categorize", path, "--format", "json", "--method", "new")
	require.NoError(t, err)
	var excluded tableJSON
	require.NoError(t, json.Unmarshal([]byte(out), &excluded))
	assert.Equal(t, []int{2}, excluded.CategorizedMoves.White["Great"])
	assert.InDelta(t, 0.1, excluded.MedianScoreLoss.Black, 1e-9)

	out, err = execute(t, "categorize", path, "--format", "json", "--method", "new", "--include-negative")
	require.NoError(t, err)
	var included tableJSON
	require.NoError(t, json.Unmarshal([]byte(out), &included))
	assert.InDelta(t, -1.5, included.MedianScoreLoss.Black, 1e-9)
}

func TestCategorize_Text(t *testing.T) {
	path := writeReview(t, t.TempDir(), "game.json", fullReview)

	out, err := execute(t, "categorize", path, "--moves")
	require.NoError(t, err)
	assert.Contains(t, out, "game.json")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Blunder")
	assert.Contains(t, out, "Strong moves")
	assert.Contains(t, out, "1, 3")
}

func TestCategorize_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeReview(t, dir, "game.json", fullReview)

	tests := []struct {
		check func(t *testing.T, err error)
		name  string
		args  []string
	}{
		{
			name: "unknown method",
			args: []string{"categorize", path, "--method", "newest"},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "unknown method")
			},
		},
		{
			name: "unknown format",
			args: []string{"categorize", path, "--format", "yaml"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, cli.ErrUnknownFormat)
			},
		},
		{
			name: "negative threshold",
			args: []string{"categorize", path, "--good", "-1"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
			},
		},
		{
			name: "invalid file",
			args: []string{"categorize", writeReview(t, dir, "bad.json", `{"review": {}}`)},
			check: func(t *testing.T, err error) {
				assert.True(t, common.IsUserError(err))
				assert.ErrorIs(t, err, common.ErrInvalidReviewFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCategorize_EnvOverride(t *testing.T) {
	path := writeReview(t, t.TempDir(), "game.json", fullReview)
	t.Setenv("MOVEREVIEW_REVIEW_METHOD", "new")

	out, err := execute(t, "categorize", path, "--format", "json")
	require.NoError(t, err)

	var table tableJSON
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, []int{2}, table.CategorizedMoves.White["Great"])
}

func TestImportAndReviews(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cache", "reviews.db")
	path := writeReview(t, dir, "game-7.json", fullReview)

	out, err := execute(t, "--db", dbPath, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported game-7.json")

	store, err := storage.Open(context.Background(), dbPath)
	require.NoError(t, err)
	summaries, err := store.ListReviews(context.Background())
	require.NoError(t, store.Close())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	id := summaries[0].ID
	assert.Equal(t, "game-7", summaries[0].GameID)

	out, err = execute(t, "--db", dbPath, "reviews", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "KataGo 1.15.3")

	out, err = execute(t, "--db", dbPath, "reviews", "show", id, "--format", "json")
	require.NoError(t, err)
	var table tableJSON
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Len(t, table.Rows, 6)

	out, err = execute(t, "--db", dbPath, "reviews", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted review")

	_, err = execute(t, "--db", dbPath, "reviews", "show", id)
	require.ErrorIs(t, err, common.ErrNotFound)

	out, err = execute(t, "--db", dbPath, "reviews", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No reviews found")
}

func TestImport_GameIDWithManyFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeReview(t, dir, "a.json", fullReview)
	b := writeReview(t, dir, "b.json", fullReview)

	_, err := execute(t, "--db", filepath.Join(dir, "reviews.db"), "import", a, b, "--game-id", "x")
	require.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "reviews.db")
	writeReview(t, dir, "a.json", fullReview)
	writeReview(t, dir, "b.json", `{"review": {"engine": "leela", "type": "full", "scores": [0]}, "game": {}}`)
	writeReview(t, dir, "c.json", `{`)

	out, err := execute(t, "--db", dbPath, "batch", dir, "--no-progress", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Black avg")
	assert.Contains(t, out, "a ")
	assert.Contains(t, out, "not categorized")
	assert.Contains(t, out, "invalid review file")

	store, err := storage.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	count, err := store.CountReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBatch_EmptyDir(t *testing.T) {
	_, err := execute(t, "batch", t.TempDir(), "--no-progress")
	require.ErrorIs(t, err, common.ErrNoReviewFiles)
}

func TestThresholds(t *testing.T) {
	out, err := execute(t, "thresholds", "--good", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "< 0.20")
	assert.Contains(t, out, "< 1.50")
	assert.Contains(t, out, "everything else")

	out, err = execute(t, "thresholds", "--json", "--mistake", "4")
	require.NoError(t, err)
	var bounds map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &bounds))
	assert.InDelta(t, 4.0, bounds["mistake"], 1e-9)
	assert.InDelta(t, 0.6, bounds["great"], 1e-9)
}

func TestThresholds_NonMonotonicWarns(t *testing.T) {
	out, err := execute(t, "thresholds", "--good", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "do not increase")
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "ReviewRecord")
	assert.Contains(t, out, `"scores"`)

	out, err = execute(t, "schema", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, `"should_show_table"`)
}
