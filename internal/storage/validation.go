// Package storage provides the review cache for movereview.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/online-go/movereview/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidReview = errors.New("invalid review")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateReviewFile checks the fields the cache indexes on.
func validateReviewFile(file *model.ReviewFile) error {
	if file == nil {
		return fmt.Errorf("%w: review file", ErrNilParameter)
	}
	if strings.TrimSpace(file.Review.Engine) == "" {
		return fmt.Errorf("%w: missing engine", ErrInvalidReview)
	}
	switch file.Review.Kind {
	case model.ReviewKindFast, model.ReviewKindFull:
	default:
		return fmt.Errorf("%w: unknown review type %q", ErrInvalidReview, file.Review.Kind)
	}
	if file.Game.Handicap < 0 {
		return fmt.Errorf("%w: negative handicap", ErrInvalidReview)
	}
	return nil
}
