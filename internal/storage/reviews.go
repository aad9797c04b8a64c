package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/model"
)

// ReviewSummary describes a cached review without its payload.
type ReviewSummary struct {
	ImportedAt time.Time        `json:"imported_at"`
	ID         string           `json:"id"`
	GameID     string           `json:"game_id"`
	Engine     string           `json:"engine"`
	Kind       model.ReviewKind `json:"type"`
	PlyCount   int              `json:"ply_count"`
	ScoreCount int              `json:"score_count"`
	Uploaded   bool             `json:"uploaded"`
}

// StoredReview is a cached review together with its decoded file.
type StoredReview struct {
	File *model.ReviewFile `json:"file"`
	ReviewSummary
}

// SaveReview stores a review file and returns its generated ID.
func (s *SQLiteStorage) SaveReview(ctx context.Context, gameID string, file *model.ReviewFile) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(gameID, "gameID"); err != nil {
		return "", err
	}
	if err := validateReviewFile(file); err != nil {
		return "", err
	}

	payload, err := json.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("failed to encode review: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reviews (id, game_id, engine, kind, ply_count, score_count, uploaded, payload, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		gameID,
		file.Review.Engine,
		string(file.Review.Kind),
		len(file.Game.Plies),
		len(file.Review.Scores),
		file.Game.IsUploaded(),
		string(payload),
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save review: %w", err)
	}

	return id, nil
}

// GetReview loads a cached review by ID.
func (s *SQLiteStorage) GetReview(ctx context.Context, id string) (*StoredReview, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	return s.getReviewTx(ctx, s.db, id)
}

func (s *SQLiteStorage) getReviewTx(ctx context.Context, q queryable, id string) (*StoredReview, error) {
	var (
		stored  StoredReview
		kind    string
		payload string
	)

	err := q.QueryRowContext(ctx, `
		SELECT id, game_id, engine, kind, ply_count, score_count, uploaded, imported_at, payload
		FROM reviews
		WHERE id = ?
	`, id).Scan(
		&stored.ID,
		&stored.GameID,
		&stored.Engine,
		&kind,
		&stored.PlyCount,
		&stored.ScoreCount,
		&stored.Uploaded,
		&stored.ImportedAt,
		&payload,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("review %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	stored.Kind = model.ReviewKind(kind)

	var file model.ReviewFile
	if err := json.Unmarshal([]byte(payload), &file); err != nil {
		return nil, fmt.Errorf("%w: review %s: %v", common.ErrDatabaseCorrupted, id, err)
	}
	stored.File = &file

	return &stored, nil
}

// ListReviews returns summaries of every cached review, newest first.
func (s *SQLiteStorage) ListReviews(ctx context.Context) ([]ReviewSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game_id, engine, kind, ply_count, score_count, uploaded, imported_at
		FROM reviews
		ORDER BY imported_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []ReviewSummary
	for rows.Next() {
		var (
			summary ReviewSummary
			kind    string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.GameID,
			&summary.Engine,
			&kind,
			&summary.PlyCount,
			&summary.ScoreCount,
			&summary.Uploaded,
			&summary.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		summary.Kind = model.ReviewKind(kind)
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// DeleteReview removes a cached review.
func (s *SQLiteStorage) DeleteReview(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("review %s: %w", id, common.ErrNotFound)
	}

	return nil
}

// CountReviews returns the number of cached reviews.
func (s *SQLiteStorage) CountReviews(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}
