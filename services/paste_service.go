package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/inkpaste/inkpaste/metrics"
	"github.com/inkpaste/inkpaste/models"
	"github.com/inkpaste/inkpaste/storage"
	"github.com/inkpaste/inkpaste/utils"
)

// maxIDAttempts bounds the retry loop when a freshly generated short ID
// collides with a live record.
const maxIDAttempts = 5

// PasteService handles paste business logic: creation with collision
// retry and the access lifecycle (lazy expiry, burn-after-read).
type PasteService struct {
	store storage.PasteStore
	now   func() time.Time
}

// NewPasteService creates a new paste service.
func NewPasteService(store storage.PasteStore) *PasteService {
	return &PasteService{
		store: store,
		now:   time.Now,
	}
}

// CreatePasteRequest represents a normalized request to create a paste.
// Boolean fields are real booleans; form-level "on"/absent markers are
// resolved at the handler boundary, never here.
type CreatePasteRequest struct {
	Title             string
	Content           string
	Syntax            string
	Expiration        string
	PasswordProtected bool
	Password          string
	BurnAfterRead     bool
}

// CreatePaste computes the expiry from the requested preset anchored at
// submission time, generates a short ID and persists the record. On an ID
// collision it retries with a fresh ID a bounded number of times before
// giving up.
func (s *PasteService) CreatePaste(ctx context.Context, req CreatePasteRequest) (string, error) {
	now := s.now()

	password := req.Password
	if !req.PasswordProtected {
		// A password submitted without the protection flag is ignored.
		password = ""
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		paste := &models.Paste{
			ID:                utils.NewShortID(),
			Title:             req.Title,
			Content:           req.Content,
			Expiry:            ExpiryFor(req.Expiration, now),
			PasswordProtected: req.PasswordProtected,
			Password:          password,
			Syntax:            req.Syntax,
			BurnAfterRead:     req.BurnAfterRead,
			CreatedAt:         now,
		}

		err := s.store.Put(ctx, paste)
		if err == nil {
			metrics.PastesCreated.Inc()
			return paste.ID, nil
		}
		if errors.Is(err, storage.ErrDuplicateID) {
			log.Printf("[WARN] id collision on %q, retrying (%d/%d)", paste.ID, attempt+1, maxIDAttempts)
			continue
		}
		return "", fmt.Errorf("store paste: %w", err)
	}

	return "", fmt.Errorf("could not allocate a unique paste id after %d attempts", maxIDAttempts)
}

// GetPaste fetches a paste with no side effects. Used by the password gate,
// which must inspect the record without consuming a burn-after-read view.
func (s *PasteService) GetPaste(ctx context.Context, id string) (*models.Paste, error) {
	return s.store.Get(ctx, id)
}

// OpenPaste applies the access lifecycle to a paste and returns it for
// display:
//
//  1. expired: the record is deleted and ErrNotFound returned;
//  2. burn-after-read: the record is atomically removed and served for
//     exactly this one response;
//  3. otherwise the record is served and stays retrievable until expiry.
func (s *PasteService) OpenPaste(ctx context.Context, id string) (*models.Paste, error) {
	paste, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if paste.IsExpired(s.now()) {
		if err := s.store.Delete(ctx, id); err != nil {
			log.Printf("[ERROR] failed to delete expired paste %s: %v", id, err)
		}
		metrics.PastesExpired.Inc()
		return nil, storage.ErrNotFound
	}

	if paste.BurnAfterRead {
		// Take is atomic per key: when two views race, only one gets the
		// record back and the other sees ErrNotFound.
		taken, err := s.store.Take(ctx, id)
		if err != nil {
			return nil, err
		}
		metrics.PastesBurned.Inc()
		metrics.PastesViewed.Inc()
		return taken, nil
	}

	metrics.PastesViewed.Inc()
	return paste, nil
}
