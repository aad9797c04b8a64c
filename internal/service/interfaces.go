// Package service defines the interfaces the commands depend on.
package service

import (
	"context"

	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/storage"
)

// ReviewStore defines the contract for the review cache.
type ReviewStore interface {
	SaveReview(ctx context.Context, gameID string, file *model.ReviewFile) (string, error)
	GetReview(ctx context.Context, id string) (*storage.StoredReview, error)
	ListReviews(ctx context.Context) ([]storage.ReviewSummary, error)
	DeleteReview(ctx context.Context, id string) error
	CountReviews(ctx context.Context) (int, error)

	Close() error
}

var _ ReviewStore = (*storage.SQLiteStorage)(nil)
