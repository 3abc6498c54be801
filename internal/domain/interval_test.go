package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	interval, err := NewTimeInterval(s, e)
	require.NoError(t, err)
	return interval
}

func TestNewTimeInterval(t *testing.T) {
	now := time.Now()

	t.Run("valid interval", func(t *testing.T) {
		interval, err := NewTimeInterval(now, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, interval.IsValid())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeInterval(now, now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeInterval(now.Add(time.Hour), now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	base := mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T13:00:00Z")

	tests := []struct {
		name  string
		other TimeInterval
		want  bool
	}{
		{
			name:  "fully contained",
			other: mustInterval(t, "2099-01-01T11:00:00Z", "2099-01-01T12:00:00Z"),
			want:  true,
		},
		{
			name:  "fully containing",
			other: mustInterval(t, "2099-01-01T09:00:00Z", "2099-01-01T14:00:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap on the left",
			other: mustInterval(t, "2099-01-01T09:00:00Z", "2099-01-01T11:00:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap on the right",
			other: mustInterval(t, "2099-01-01T12:00:00Z", "2099-01-01T15:00:00Z"),
			want:  true,
		},
		{
			name:  "adjacent before (half-open boundary)",
			other: mustInterval(t, "2099-01-01T08:00:00Z", "2099-01-01T10:00:00Z"),
			want:  false,
		},
		{
			name:  "adjacent after (half-open boundary)",
			other: mustInterval(t, "2099-01-01T13:00:00Z", "2099-01-01T15:00:00Z"),
			want:  false,
		},
		{
			name:  "disjoint",
			other: mustInterval(t, "2099-01-02T10:00:00Z", "2099-01-02T13:00:00Z"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestDurationHours(t *testing.T) {
	assert.Equal(t, 3, mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T13:00:00Z").DurationHours())
	// Неполный час округляется вверх
	assert.Equal(t, 3, mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T12:30:00Z").DurationHours())
	assert.Equal(t, 1, mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T10:15:00Z").DurationHours())
}

func TestIsOverlapping(t *testing.T) {
	candidate := mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T13:00:00Z")

	booking := func(start, end string, status BookingStatus) Booking {
		return Booking{
			ID:       1,
			HallID:   7,
			Interval: mustInterval(t, start, end),
			Status:   status,
		}
	}

	t.Run("empty list", func(t *testing.T) {
		conflict, err := IsOverlapping(candidate, nil)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("confirmed booking inside candidate", func(t *testing.T) {
		conflict, err := IsOverlapping(candidate, []Booking{
			booking("2099-01-01T11:00:00Z", "2099-01-01T12:00:00Z", StatusConfirmed),
		})
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("pending booking blocks", func(t *testing.T) {
		conflict, err := IsOverlapping(candidate, []Booking{
			booking("2099-01-01T12:00:00Z", "2099-01-01T14:00:00Z", StatusPending),
		})
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("cancelled and completed never block", func(t *testing.T) {
		conflict, err := IsOverlapping(candidate, []Booking{
			booking("2099-01-01T10:00:00Z", "2099-01-01T13:00:00Z", StatusCancelled),
			booking("2099-01-01T10:00:00Z", "2099-01-01T13:00:00Z", StatusCompleted),
		})
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("malformed entry is skipped, not fatal", func(t *testing.T) {
		malformed := Booking{
			ID:     2,
			HallID: 7,
			Status: StatusConfirmed,
			Interval: TimeInterval{
				Start: time.Date(2099, 1, 1, 12, 0, 0, 0, time.UTC),
				End:   time.Date(2099, 1, 1, 11, 0, 0, 0, time.UTC),
			},
		}
		conflict, err := IsOverlapping(candidate, []Booking{
			malformed,
			booking("2099-01-01T11:00:00Z", "2099-01-01T12:00:00Z", StatusConfirmed),
		})
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("invalid candidate checked before comparisons", func(t *testing.T) {
		bad := TimeInterval{
			Start: time.Date(2099, 1, 1, 13, 0, 0, 0, time.UTC),
			End:   time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC),
		}
		_, err := IsOverlapping(bad, []Booking{
			booking("2099-01-01T11:00:00Z", "2099-01-01T12:00:00Z", StatusConfirmed),
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("symmetric under interval swap", func(t *testing.T) {
		a := mustInterval(t, "2099-01-01T10:00:00Z", "2099-01-01T12:00:00Z")
		b := mustInterval(t, "2099-01-01T11:00:00Z", "2099-01-01T14:00:00Z")

		asBooking := func(i TimeInterval) []Booking {
			return []Booking{{ID: 1, HallID: 1, Interval: i, Status: StatusConfirmed}}
		}

		abConflict, err := IsOverlapping(a, asBooking(b))
		require.NoError(t, err)
		baConflict, err := IsOverlapping(b, asBooking(a))
		require.NoError(t, err)
		assert.Equal(t, abConflict, baConflict)
	})
}
