//go:build unit

package booking_test

import (
	"math/rand"
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFits(t *testing.T) {
	cases := []struct {
		name      string
		existing  []booking.Interval
		candidate booking.Interval
		fits      bool
	}{
		{
			name:      "empty schedule accepts anything",
			existing:  nil,
			candidate: iv(t, 0, 60),
			fits:      true,
		},
		{
			name:      "candidate inside an approved interval",
			existing:  []booking.Interval{iv(t, 0, 60)},
			candidate: iv(t, 30, 45),
			fits:      false,
		},
		{
			name:      "candidate straddles an interval start",
			existing:  []booking.Interval{iv(t, 60, 120)},
			candidate: iv(t, 30, 90),
			fits:      false,
		},
		{
			name:      "candidate straddles an interval end",
			existing:  []booking.Interval{iv(t, 0, 60)},
			candidate: iv(t, 45, 90),
			fits:      false,
		},
		{
			name:      "candidate engulfs an interval",
			existing:  []booking.Interval{iv(t, 30, 45)},
			candidate: iv(t, 0, 60),
			fits:      false,
		},
		{
			name:      "candidate starts where an interval ends",
			existing:  []booking.Interval{iv(t, 0, 60)},
			candidate: iv(t, 60, 120),
			fits:      true,
		},
		{
			name:      "candidate ends where an interval starts",
			existing:  []booking.Interval{iv(t, 60, 120)},
			candidate: iv(t, 0, 60),
			fits:      true,
		},
		{
			name:      "exact gap between two intervals",
			existing:  []booking.Interval{iv(t, 0, 30), iv(t, 60, 90)},
			candidate: iv(t, 30, 60),
			fits:      true,
		},
		{
			name:      "gap too small",
			existing:  []booking.Interval{iv(t, 0, 30), iv(t, 60, 90)},
			candidate: iv(t, 25, 60),
			fits:      false,
		},
		{
			name:      "conflict with a later interval only",
			existing:  []booking.Interval{iv(t, 0, 10), iv(t, 120, 180)},
			candidate: iv(t, 110, 130),
			fits:      false,
		},
		{
			name:      "after every interval",
			existing:  []booking.Interval{iv(t, 0, 30), iv(t, 60, 90)},
			candidate: iv(t, 90, 150),
			fits:      true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			schedule := booking.NewSchedule(c.existing)
			assert.Equal(t, c.fits, schedule.Fits(c.candidate))
		})
	}
}

func TestScheduleFitsUnsortedInput(t *testing.T) {
	// Build order must not matter: the candidate overlaps the middle interval
	// no matter where it appears in the input slice.
	existing := []booking.Interval{iv(t, 120, 180), iv(t, 0, 30), iv(t, 60, 90)}
	schedule := booking.NewSchedule(existing)

	assert.False(t, schedule.Fits(iv(t, 70, 80)))
	assert.True(t, schedule.Fits(iv(t, 30, 60)))
	assert.Equal(t, 3, schedule.Len())
}

func TestScheduleFitsMatchesPairwiseCheck(t *testing.T) {
	// Fits must agree with the naive any-overlap answer on arbitrary
	// non-overlapping schedules.
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		var existing []booking.Interval
		cursor := 0
		for len(existing) < 6 {
			gap := rng.Intn(30)
			length := 10 + rng.Intn(50)
			existing = append(existing, iv(t, cursor+gap, cursor+gap+length))
			cursor += gap + length
		}

		start := rng.Intn(cursor + 60)
		end := start + 1 + rng.Intn(90)
		candidate := iv(t, start, end)

		expected := true
		for _, occupied := range existing {
			if occupied.Overlaps(candidate) {
				expected = false
				break
			}
		}

		schedule := booking.NewSchedule(existing)
		require.Equal(t, expected, schedule.Fits(candidate),
			"trial %d: candidate %s against %v", trial, candidate, existing)
	}
}
