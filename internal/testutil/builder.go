// Package testutil provides fixtures for tests that need review data or a
// review cache.
//
// Example usage:
//
//	file := testutil.NewReviewBuilder().
//		Full().
//		Play(model.Black, 3, 3, -0.1).
//		Play(model.White, 15, 15, 0.4).
//		Build()
//
//	db := testutil.SetupTestDB(t, file)
package testutil

import "github.com/online-go/movereview/internal/model"

// ReviewBuilder assembles a review file one ply at a time. Every played move
// is also recorded as the engine's top candidate unless Deviate is used.
type ReviewBuilder struct {
	file     model.ReviewFile
	deviated map[int]model.Move
}

// NewReviewBuilder starts a fast KataGo review with an opening score of 0.
func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		file: model.ReviewFile{
			Review: model.ReviewRecord{
				Engine:   "KataGo 1.15.3",
				Kind:     model.ReviewKindFast,
				Strength: 1000,
				Scores:   []float64{0},
			},
		},
		deviated: make(map[int]model.Move),
	}
}

// Full marks the review as a full review.
func (b *ReviewBuilder) Full() *ReviewBuilder {
	b.file.Review.Kind = model.ReviewKindFull
	return b
}

// WithEngine sets the engine name.
func (b *ReviewBuilder) WithEngine(engine string) *ReviewBuilder {
	b.file.Review.Engine = engine
	return b
}

// WithHandicap sets the game handicap.
func (b *ReviewBuilder) WithHandicap(stones int, free bool) *ReviewBuilder {
	b.file.Game.Handicap = stones
	b.file.Game.FreeHandicapPlacement = free
	return b
}

// Play appends a ply and the score of the position it produces.
func (b *ReviewBuilder) Play(color model.Color, x, y int, score float64) *ReviewBuilder {
	b.file.Game.Plies = append(b.file.Game.Plies, model.Ply{Color: color, Move: model.Move{X: x, Y: y}})
	b.file.Review.Scores = append(b.file.Review.Scores, score)
	return b
}

// Deviate makes the engine's top candidate for the most recent ply differ
// from the move actually played.
func (b *ReviewBuilder) Deviate(x, y int) *ReviewBuilder {
	if n := len(b.file.Game.Plies); n > 0 {
		b.deviated[n-1] = model.Move{X: x, Y: y}
	}
	return b
}

// Build returns the review file. Full reviews get one move detail per score.
func (b *ReviewBuilder) Build() *model.ReviewFile {
	file := b.file
	file.Review.Scores = append([]float64(nil), b.file.Review.Scores...)
	file.Game.Plies = append([]model.Ply(nil), b.file.Game.Plies...)

	if file.Review.Kind != model.ReviewKindFull {
		return &file
	}

	plies := file.Game.Plies
	moves := make(map[int]model.MoveDetail, len(file.Review.Scores))
	for k, score := range file.Review.Scores {
		detail := model.MoveDetail{Score: score, Move: model.PassMove}
		if k > 0 {
			detail.Move = plies[k-1].Move
		}
		if k < len(plies) {
			candidate := plies[k].Move
			if alt, ok := b.deviated[k]; ok {
				candidate = alt
			}
			detail.Branches = []model.Branch{{Moves: []model.Move{candidate}, Visits: 500}}
		}
		moves[k] = detail
	}
	file.Review.Moves = moves

	return &file
}
