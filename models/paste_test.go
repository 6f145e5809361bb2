package models

import (
	"testing"
	"time"
)

func TestPasteIsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		expiry int64
		want   bool
	}{
		{"expiry in the past", now.Add(-time.Minute).Unix(), true},
		{"expiry in the future", now.Add(time.Minute).Unix(), false},
		{"expiry exactly now", now.Unix(), false},
		{"never-expires sentinel", NeverExpires, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paste{ID: "ab12", Expiry: tt.expiry}
			if got := p.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
