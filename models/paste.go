package models

import (
	"time"
)

// NeverExpires is the sentinel expiry timestamp (epoch seconds, thousands
// of years out) used for pastes that should effectively never expire. The
// lazy-expiry check treats such pastes as always live without needing a
// special case.
const NeverExpires int64 = 333400450405

// Paste represents a single stored text submission. All fields are set at
// creation and never mutated; a paste is only ever created and deleted.
// Password is only meaningful when PasswordProtected is true.
type Paste struct {
	ID                string    `json:"id" bson:"_id"`
	Title             string    `json:"title" bson:"title"`
	Content           string    `json:"content" bson:"content"`
	Expiry            int64     `json:"expiry" bson:"expiry"`
	PasswordProtected bool      `json:"is_password_protected" bson:"is_password_protected"`
	Password          string    `json:"password,omitempty" bson:"password,omitempty"`
	Syntax            string    `json:"syntax,omitempty" bson:"syntax,omitempty"`
	BurnAfterRead     bool      `json:"burn_after_read" bson:"burn_after_read"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

// IsExpired checks if the paste's expiry timestamp has passed. Expiry is
// lazy: an expired paste stays in the store until the next access deletes it.
func (p *Paste) IsExpired(now time.Time) bool {
	return now.Unix() > p.Expiry
}
