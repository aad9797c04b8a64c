// Package model defines the core domain models used throughout the application.
package model

// ReviewKind selects which categorizer family applies.
type ReviewKind string

// Review kinds offered by the AI integration.
const (
	ReviewKindFast ReviewKind = "fast"
	ReviewKindFull ReviewKind = "full"
)

// Method selects between the two historical full-review algorithms.
type Method string

// Full-review categorization methods.
const (
	MethodOld Method = "old"
	MethodNew Method = "new"
)

// ParseMethod converts a user supplied string into a Method.
// The empty string maps to MethodOld.
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case "", MethodOld:
		return MethodOld, true
	case MethodNew:
		return MethodNew, true
	default:
		return "", false
	}
}

// Branch is one candidate line suggested by the AI engine.
type Branch struct {
	Moves  []Move `json:"moves"`
	Visits int    `json:"visits"`
}

// FirstMove returns the branch's opening move, if any.
func (b Branch) FirstMove() (Move, bool) {
	if len(b.Moves) == 0 {
		return Move{}, false
	}
	return b.Moves[0], true
}

// MoveDetail is the engine's analysis of one position.
// Detail k scores position k (same index as ReviewRecord.Scores), Move is the
// move that produced position k and Branches are candidates for the next ply.
type MoveDetail struct {
	Branches []Branch `json:"branches,omitempty"`
	Move     Move     `json:"move"`
	Score    float64  `json:"score"`
}

// ReviewRecord is the raw output of an AI review for one game.
type ReviewRecord struct {
	Moves    map[int]MoveDetail `json:"moves,omitempty"`
	Engine   string             `json:"engine" validate:"required"`
	Kind     ReviewKind         `json:"type" validate:"required"`
	Scores   []float64          `json:"scores,omitempty"`
	Strength int                `json:"strength" validate:"gte=0"`
}

// HasScores reports whether the engine produced any score data yet.
func (r ReviewRecord) HasScores() bool {
	return r.Scores != nil
}

// ReviewFile is the on-disk format pairing a review with its game.
type ReviewFile struct {
	Review ReviewRecord `json:"review"`
	Game   GameContext  `json:"game"`
}
