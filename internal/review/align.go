package review

import "github.com/online-go/movereview/internal/model"

// Alignment maps plies to the players who made them.
type Alignment struct {
	// MovePlayers[i] is the color that played ply i.
	MovePlayers []model.Color
	// HandicapOffset is the first ply index that gets scored.
	HandicapOffset int
	// BlackPlayerIndexOffset is 1 when black's first move is ply 1.
	BlackPlayerIndexOffset int
}

// Align derives the per-ply mover list and handicap offsets from the game.
// Plies without a color tag alternate from the previous ply.
func Align(game model.GameContext) Alignment {
	a := Alignment{
		MovePlayers:    make([]model.Color, len(game.Plies)),
		HandicapOffset: handicapOffset(game),
	}
	if game.Handicap > 0 {
		a.BlackPlayerIndexOffset = 1
	}

	prev := model.White
	if a.BlackPlayerIndexOffset == 1 {
		prev = model.Black
	}
	for i, ply := range game.Plies {
		color := ply.Color
		if color != model.Black && color != model.White {
			color = prev.Opponent()
		}
		a.MovePlayers[i] = color
		prev = color
	}

	return a
}

// Mover returns the color that played ply i.
func (a Alignment) Mover(i int) (model.Color, bool) {
	if i < 0 || i >= len(a.MovePlayers) {
		return "", false
	}
	return a.MovePlayers[i], true
}

func handicapOffset(game model.GameContext) int {
	if !game.FreeHandicapPlacement || game.Handicap <= 0 {
		return 0
	}
	// A single free stone does not shift the scored move index.
	if game.Handicap == 1 {
		return 0
	}
	return game.Handicap
}
