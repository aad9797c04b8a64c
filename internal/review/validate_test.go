package review

import (
	"testing"

	"github.com/online-go/movereview/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidator_Validate(t *testing.T) {
	game := colored(model.Black, model.White, model.Black, model.White)
	scores := []float64{0, 1, 2, 3, 4}
	threeDetails := map[int]model.MoveDetail{1: {}, 2: {}, 3: {}}

	tests := []struct {
		name string
		rec  model.ReviewRecord
		game model.GameContext
		want Validation
	}{
		{
			name: "valid full review",
			rec:  model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFull, Scores: scores},
			game: game,
			want: Validation{IsValid: true, ShouldShowTable: true},
		},
		{
			name: "engine name matched case-insensitively",
			rec:  model.ReviewRecord{Engine: "KataGo v1.14", Kind: model.ReviewKindFull, Scores: scores},
			game: game,
			want: Validation{IsValid: true, ShouldShowTable: true},
		},
		{
			name: "unrecognized engine",
			rec:  model.ReviewRecord{Engine: "leela_zero", Kind: model.ReviewKindFull, Scores: scores},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
		{
			name: "no scores yet",
			rec:  model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFull},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
		{
			name: "score count does not match moves",
			rec:  model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFull, Scores: scores[:4]},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
		{
			name: "fast review with three details",
			rec:  model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFast, Scores: scores, Moves: threeDetails},
			game: game,
			want: Validation{IsValid: true, ShouldShowTable: true},
		},
		{
			name: "fast review with two details",
			rec: model.ReviewRecord{
				Engine: "katago",
				Kind:   model.ReviewKindFast,
				Scores: scores,
				Moves:  map[int]model.MoveDetail{1: {}, 2: {}},
			},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
		{
			name: "fast review without details",
			rec:  model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFast, Scores: scores},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
		{
			name: "short fast review is exempt from detail count",
			rec: model.ReviewRecord{
				Engine: "katago",
				Kind:   model.ReviewKindFast,
				Scores: []float64{0, 1, 2, 3},
				Moves:  map[int]model.MoveDetail{1: {}},
			},
			game: colored(model.Black, model.White, model.Black),
			want: Validation{IsValid: true, ShouldShowTable: true},
		},
		{
			name: "unknown kind",
			rec:  model.ReviewRecord{Engine: "katago", Kind: "deep", Scores: scores},
			game: game,
			want: Validation{IsValid: false, ShouldShowTable: true},
		},
	}

	v := NewValidator("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.rec, tt.game))
		})
	}
}

func TestValidator_UploadedGame(t *testing.T) {
	// "(" + root node + four move nodes.
	sgf := "(;GM[1]SZ[19];B[pd];W[dp];B[pp];W[dd])"

	tests := []struct {
		name   string
		game   model.GameContext
		scores []float64
		want   bool
	}{
		{
			name:   "even uploaded game",
			game:   model.GameContext{OriginalSGF: sgf},
			scores: []float64{0, 1, 2, 3, 4},
			want:   true,
		},
		{
			name:   "handicap uploaded game subtracts black offset",
			game:   model.GameContext{OriginalSGF: sgf, Handicap: 2},
			scores: []float64{0, 1, 2, 3},
			want:   true,
		},
		{
			name:   "uploaded game mismatch",
			game:   model.GameContext{OriginalSGF: sgf},
			scores: []float64{0, 1, 2},
			want:   false,
		},
	}

	v := NewValidator("katago")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.ReviewRecord{Engine: "katago", Kind: model.ReviewKindFull, Scores: tt.scores}
			got := v.Validate(rec, tt.game)
			assert.Equal(t, tt.want, got.IsValid)
			assert.True(t, got.ShouldShowTable)
		})
	}
}
