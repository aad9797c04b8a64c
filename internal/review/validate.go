package review

import (
	"log/slog"
	"strings"

	"github.com/online-go/movereview/internal/model"
)

// RecognizedEngine is the AI engine whose reviews can be categorized.
const RecognizedEngine = "katago"

// fastReviewDetailCount is the number of worst moves a fast review re-scores.
const fastReviewDetailCount = 3

// Validation is the outcome of checking a review against its game.
// ShouldShowTable stays true for most failures so the caller renders a
// pending placeholder instead of an error.
type Validation struct {
	IsValid         bool
	ShouldShowTable bool
}

var invalid = Validation{IsValid: false, ShouldShowTable: true}

// Validator checks that review data is consistent with the recorded game.
type Validator struct {
	engine string
}

// NewValidator creates a validator accepting reviews from the given engine.
// An empty engine name selects RecognizedEngine.
func NewValidator(engine string) *Validator {
	if engine == "" {
		engine = RecognizedEngine
	}
	return &Validator{engine: strings.ToLower(engine)}
}

// Validate reports whether rec can be categorized against game.
func (v *Validator) Validate(rec model.ReviewRecord, game model.GameContext) Validation {
	if !strings.Contains(strings.ToLower(rec.Engine), v.engine) {
		slog.Debug("Review engine not recognized", "engine", rec.Engine, "want", v.engine)
		return invalid
	}

	if !rec.HasScores() {
		return invalid
	}

	if !moveCountMatches(rec, game) {
		slog.Debug("Review score count does not match game",
			"scores", len(rec.Scores),
			"plies", len(game.Plies),
			"uploaded", game.IsUploaded())
		return invalid
	}

	switch rec.Kind {
	case model.ReviewKindFast:
		if rec.Moves == nil {
			return invalid
		}
		// Very short games have fewer than three moves worth re-scoring.
		if len(rec.Scores) > 4 && len(rec.Moves) != fastReviewDetailCount {
			slog.Debug("Fast review has unexpected detail count", "details", len(rec.Moves))
			return invalid
		}
		return Validation{IsValid: true, ShouldShowTable: true}
	case model.ReviewKindFull:
		return Validation{IsValid: true, ShouldShowTable: true}
	default:
		return invalid
	}
}

func moveCountMatches(rec model.ReviewRecord, game model.GameContext) bool {
	if !game.IsUploaded() {
		return len(game.Plies) == len(rec.Scores)-1
	}
	return uploadedMoveCount(game) == len(rec.Scores)
}

// uploadedMoveCount counts SGF nodes in an uploaded record. The split yields
// the leading "(" piece, the root node and one piece per move node.
func uploadedMoveCount(game model.GameContext) int {
	return len(strings.Split(game.OriginalSGF, ";")) - 1 - Align(game).BlackPlayerIndexOffset
}
