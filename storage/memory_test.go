package storage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inkpaste/inkpaste/models"
)

func newTestPaste(id string) *models.Paste {
	return &models.Paste{
		ID:        id,
		Title:     "T",
		Content:   "C",
		Expiry:    models.NeverExpires,
		CreatedAt: time.Now(),
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, newTestPaste("ab12")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	paste, err := store.Get(ctx, "ab12")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if paste.Content != "C" || paste.Title != "T" {
		t.Errorf("unexpected record: %+v", paste)
	}

	// Reads are idempotent for non-burn records
	again, err := store.Get(ctx, "ab12")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if again.Content != paste.Content {
		t.Errorf("repeated Get returned different content")
	}
}

func TestMemoryStoreDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, newTestPaste("ab12")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, newTestPaste("ab12")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get(context.Background(), "0000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, newTestPaste("ab12")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(ctx, "ab12"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Deleting an absent key signals "already gone", not an error
	if err := store.Delete(ctx, "ab12"); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "ab12"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreTake(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, newTestPaste("ab12")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	paste, err := store.Take(ctx, "ab12")
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if paste.Content != "C" {
		t.Errorf("unexpected record: %+v", paste)
	}

	if _, err := store.Take(ctx, "ab12"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second Take, got %v", err)
	}
	if _, err := store.Get(ctx, "ab12"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Take, got %v", err)
	}
}

// Two simultaneous burn-after-read views race; at most one may observe the
// record.
func TestMemoryStoreTakeConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, newTestPaste("ab12")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	const viewers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take(ctx, "ab12"); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Errorf("expected exactly one Take winner, got %d", got)
	}
}
