package review

import "github.com/online-go/movereview/internal/model"

type step struct {
	color model.Color
	loss  float64
}

// trajectory builds a score list in which every step costs its mover loss points.
func trajectory(start float64, steps []step) []float64 {
	scores := []float64{start}
	current := start
	for _, s := range steps {
		if s.color == model.Black {
			current -= s.loss
		} else {
			current += s.loss
		}
		scores = append(scores, current)
	}
	return scores
}

// gameFor returns a game whose plies carry the step colors. Ply i is played at (i, i).
func gameFor(steps []step) model.GameContext {
	plies := make([]model.Ply, len(steps))
	for i, s := range steps {
		plies[i] = model.Ply{Color: s.color, Move: model.Move{X: i, Y: i}}
	}
	return model.GameContext{Plies: plies}
}

// colored builds a game from an explicit color sequence.
func colored(colors ...model.Color) model.GameContext {
	steps := make([]step, len(colors))
	for i, c := range colors {
		steps[i] = step{color: c}
	}
	return gameFor(steps)
}

// fullDetails returns analysis for every position of the game.
func fullDetails(scores []float64, game model.GameContext) map[int]model.MoveDetail {
	details := make(map[int]model.MoveDetail, len(scores))
	for k, score := range scores {
		detail := model.MoveDetail{Score: score}
		if k > 0 && k-1 < len(game.Plies) {
			detail.Move = game.Plies[k-1].Move
		}
		details[k] = detail
	}
	return details
}

func fullReview(scores []float64, game model.GameContext) model.ReviewRecord {
	return model.ReviewRecord{
		Engine:   "KataGo 1.15.3",
		Kind:     model.ReviewKindFull,
		Strength: 1000,
		Scores:   scores,
		Moves:    fullDetails(scores, game),
	}
}

// setBranches replaces the candidates analyzed at position k.
func setBranches(rec model.ReviewRecord, k int, branches ...model.Branch) {
	detail := rec.Moves[k]
	detail.Branches = branches
	rec.Moves[k] = detail
}

func branch(m model.Move, visits int) model.Branch {
	return model.Branch{Moves: []model.Move{m}, Visits: visits}
}

func countsOf(c *Categorization, color model.Color) model.CategoryCounts {
	return *c.Counters.Get(color)
}

func categoriesOf(c *Categorization, color model.Color) []model.Category {
	var cats []model.Category
	for _, m := range c.Moves {
		if m.Color == color {
			cats = append(cats, m.Category)
		}
	}
	return cats
}
