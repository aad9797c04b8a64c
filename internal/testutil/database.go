package testutil

import (
	"context"
	"strconv"
	"testing"

	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/service"
	"github.com/online-go/movereview/internal/storage"
)

// TestDB is an in-memory review cache seeded for a single test.
type TestDB struct {
	Storage service.ReviewStore
	t       *testing.T
	IDs     []string
}

// SetupTestDB creates a migrated in-memory cache and saves the given reviews
// under the game IDs "game-1", "game-2", and so on. The cache is closed when
// the test ends.
func SetupTestDB(t *testing.T, files ...*model.ReviewFile) *TestDB {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	db := &TestDB{Storage: store, t: t}
	for i, file := range files {
		id, err := store.SaveReview(ctx, gameID(i), file)
		if err != nil {
			t.Fatalf("failed to seed review %d: %v", i+1, err)
		}
		db.IDs = append(db.IDs, id)
	}

	return db
}

// MustGetReview returns a stored review or fails the test.
func (db *TestDB) MustGetReview(id string) *storage.StoredReview {
	db.t.Helper()
	stored, err := db.Storage.GetReview(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to get review %s: %v", id, err)
	}
	return stored
}

func gameID(i int) string {
	return "game-" + strconv.Itoa(i+1)
}
