package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpaste/inkpaste/models"
	"github.com/inkpaste/inkpaste/storage"
)

// collidingStore wraps the memory store and fails the first n Puts with
// ErrDuplicateID, simulating short-ID collisions.
type collidingStore struct {
	*storage.MemoryStore
	failures int
	puts     int
}

func (s *collidingStore) Put(ctx context.Context, paste *models.Paste) error {
	s.puts++
	if s.puts <= s.failures {
		return storage.ErrDuplicateID
	}
	return s.MemoryStore.Put(ctx, paste)
}

func TestCreatePaste(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Title:      "T",
		Content:    "C",
		Expiration: "never",
	})
	require.NoError(t, err)
	assert.Len(t, id, 4)

	paste, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "T", paste.Title)
	assert.Equal(t, "C", paste.Content)
	assert.Equal(t, models.NeverExpires, paste.Expiry)
	assert.False(t, paste.BurnAfterRead)
	assert.False(t, paste.PasswordProtected)
}

func TestCreatePasteIgnoresPasswordWithoutFlag(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:    "C",
		Expiration: "never",
		Password:   "stray",
	})
	require.NoError(t, err)

	paste, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, paste.PasswordProtected)
	assert.Empty(t, paste.Password)
}

func TestCreatePasteRetriesOnCollision(t *testing.T) {
	store := &collidingStore{MemoryStore: storage.NewMemoryStore(), failures: 3}
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:    "C",
		Expiration: "never",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, store.puts)

	_, err = store.Get(context.Background(), id)
	assert.NoError(t, err)
}

func TestCreatePasteGivesUpAfterBoundedRetries(t *testing.T) {
	store := &collidingStore{MemoryStore: storage.NewMemoryStore(), failures: 100}
	svc := NewPasteService(store)

	_, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:    "C",
		Expiration: "never",
	})
	require.Error(t, err)
	assert.Equal(t, maxIDAttempts, store.puts)
}

func TestOpenPasteNormalReadsAreIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:    "C",
		Expiration: "never",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		paste, err := svc.OpenPaste(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "C", paste.Content)
	}
}

func TestOpenPasteBurnAfterRead(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:       "C",
		Expiration:    "never",
		BurnAfterRead: true,
	})
	require.NoError(t, err)

	paste, err := svc.OpenPaste(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "C", paste.Content)

	_, err = svc.OpenPaste(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOpenPasteLazyExpiry(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	created := time.Now()
	svc.now = func() time.Time { return created }

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:    "C",
		Expiration: "30s",
	})
	require.NoError(t, err)

	// Still readable just before the deadline
	svc.now = func() time.Time { return created.Add(29 * time.Second) }
	_, err = svc.OpenPaste(context.Background(), id)
	require.NoError(t, err)

	// Gone at t+31s, and the record is deleted from the store
	svc.now = func() time.Time { return created.Add(31 * time.Second) }
	_, err = svc.OpenPaste(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Fetching again still reports not found
	_, err = svc.OpenPaste(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetPasteHasNoSideEffects(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewPasteService(store)

	id, err := svc.CreatePaste(context.Background(), CreatePasteRequest{
		Content:       "C",
		Expiration:    "never",
		BurnAfterRead: true,
	})
	require.NoError(t, err)

	// The password gate peeks at burn pastes without consuming the view
	_, err = svc.GetPaste(context.Background(), id)
	require.NoError(t, err)
	_, err = svc.GetPaste(context.Background(), id)
	require.NoError(t, err)

	paste, err := svc.OpenPaste(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "C", paste.Content)
}
