package utils

import (
	"github.com/google/uuid"
)

// Short-ID length. Four hex characters give only 65536 distinct IDs, a
// materially smaller collision space than the UUID they are cut from; the
// store's Put is the authority on duplicate detection and callers must
// retry on collision.
const shortIDLength = 4

// NewShortID generates a short paste identifier by truncating a random
// UUIDv4 string.
func NewShortID() string {
	return uuid.NewString()[:shortIDLength]
}

// IsValidID checks whether an identifier could have been produced by
// NewShortID: the right length, lowercase hex only.
func IsValidID(id string) bool {
	if len(id) != shortIDLength {
		return false
	}
	for _, char := range id {
		if (char < '0' || char > '9') && (char < 'a' || char > 'f') {
			return false
		}
	}
	return true
}
