package services

import (
	"time"

	"github.com/inkpaste/inkpaste/models"
)

// Expiration preset labels accepted by the create form, mapped to their
// duration in seconds. "never" and unknown labels map to the far-future
// sentinel instead.
var expirationPresets = map[string]int64{
	"3h":  10800,
	"24h": 86400,
	"1w":  604800,
	"1m":  2678400,
	"30s": 30,
}

// ExpiryFor maps an expiration preset label to an absolute expiry
// timestamp anchored at now. An unrecognized label (including "never" and
// the empty string) yields the never-expires sentinel; falling back to
// never on unknown input is a deliberate policy choice carried over from
// the original lifecycle rules, not an error.
func ExpiryFor(label string, now time.Time) int64 {
	if secs, ok := expirationPresets[label]; ok {
		return now.Unix() + secs
	}
	return models.NeverExpires
}
