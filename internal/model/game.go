package model

import "fmt"

// Color identifies the player who made a move.
type Color string

// Player colors.
const (
	Black Color = "black"
	White Color = "white"
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// ByColor holds one value per player color.
type ByColor[T any] struct {
	Black T `json:"black"`
	White T `json:"white"`
}

// Get returns a pointer to the value for the given color.
func (b *ByColor[T]) Get(c Color) *T {
	if c == White {
		return &b.White
	}
	return &b.Black
}

// Move is a board coordinate. A pass is encoded as X == -1.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PassMove is the sentinel used for passes.
var PassMove = Move{X: -1, Y: -1}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool {
	return m.X == -1
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d,%d", m.X, m.Y)
}

// Ply is a single move in the game record. An empty Color means the
// players alternate from the previous ply.
type Ply struct {
	Color Color `json:"color,omitempty" validate:"omitempty,oneof=black white"`
	Move  Move  `json:"move"`
}

// GameContext is the part of the recorded game the categorizer needs.
type GameContext struct {
	// OriginalSGF is set only for games uploaded from an external record.
	OriginalSGF           string `json:"original_sgf,omitempty"`
	Plies                 []Ply  `json:"plies" validate:"dive"`
	Handicap              int    `json:"handicap" validate:"gte=0"`
	FreeHandicapPlacement bool   `json:"free_handicap_placement"`
}

// IsUploaded reports whether the game came from an uploaded record.
func (g GameContext) IsUploaded() bool {
	return g.OriginalSGF != ""
}
