package timeago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		delta time.Duration
		want  string
	}{
		{"seconds", 5 * time.Second, "5 seconds ago"},
		{"just over a minute", 90 * time.Second, "1 minutes ago"},
		{"hours", 2 * time.Hour, "2 hours ago"},
		{"days", 3 * 24 * time.Hour, "3 days ago"},
		{"just over a month", 40 * 24 * time.Hour, "1 months ago"},
		{"just over a year", 400 * 24 * time.Hour, "1 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(now.Add(-tt.delta), now))
		})
	}
}

func TestFormat_UnitBoundaries(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Exactly one unit does not exceed the threshold: falls to the next.
	assert.Equal(t, "60 seconds ago", Format(now.Add(-time.Minute), now))
	assert.Equal(t, "0 seconds ago", Format(now, now))

	// 61 seconds is strictly more than one minute.
	assert.Equal(t, "1 minutes ago", Format(now.Add(-61*time.Second), now))
}
