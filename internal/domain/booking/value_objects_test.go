//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func iv(t *testing.T, startMin, endMin int) booking.Interval {
	t.Helper()
	return booking.ReconstructInterval(at(startMin), at(endMin))
}

func TestNewInterval(t *testing.T) {
	now := at(0)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid future interval",
			start: at(10),
			end:   at(70),
		},
		{
			name:  "start exactly at now",
			start: now,
			end:   at(60),
		},
		{
			name:  "end equals start",
			start: at(10),
			end:   at(10),
			errIs: booking.ErrInvalidInterval,
		},
		{
			name:  "end before start",
			start: at(70),
			end:   at(10),
			errIs: booking.ErrInvalidInterval,
		},
		{
			name:  "start in the past",
			start: at(-10),
			end:   at(60),
			errIs: booking.ErrStartInPast,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			interval, err := booking.NewInterval(c.start, c.end, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.start, interval.Start())
			assert.Equal(t, c.end, interval.End())
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.Interval
		overlaps bool
	}{
		{
			name:     "disjoint",
			a:        booking.ReconstructInterval(at(0), at(30)),
			b:        booking.ReconstructInterval(at(60), at(90)),
			overlaps: false,
		},
		{
			name:     "partial overlap",
			a:        booking.ReconstructInterval(at(0), at(45)),
			b:        booking.ReconstructInterval(at(30), at(90)),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        booking.ReconstructInterval(at(0), at(60)),
			b:        booking.ReconstructInterval(at(15), at(30)),
			overlaps: true,
		},
		{
			name:     "identical",
			a:        booking.ReconstructInterval(at(0), at(60)),
			b:        booking.ReconstructInterval(at(0), at(60)),
			overlaps: true,
		},
		{
			name:     "back to back is adjacency",
			a:        booking.ReconstructInterval(at(0), at(60)),
			b:        booking.ReconstructInterval(at(60), at(120)),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalContains(t *testing.T) {
	interval := booking.ReconstructInterval(at(0), at(60))

	assert.True(t, interval.Contains(at(0)), "start boundary is inside")
	assert.True(t, interval.Contains(at(30)))
	assert.False(t, interval.Contains(at(60)), "end boundary is outside")
	assert.False(t, interval.Contains(at(-1)))
}
