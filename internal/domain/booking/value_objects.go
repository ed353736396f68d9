package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval = errors.New("end must be after start")
	ErrStartInPast     = errors.New("start must not be in the past")
)

// Interval is a half-open booking period [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

// NewInterval validates a candidate period against the caller-supplied now.
// Equal boundaries are rejected; a start exactly at now is allowed.
func NewInterval(start, end, now time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	if start.Before(now) {
		return Interval{}, ErrStartInPast
	}
	return Interval{start: start, end: end}, nil
}

// ReconstructInterval rebuilds a stored period without the now-check.
func ReconstructInterval(start, end time.Time) Interval {
	return Interval{start: start, end: end}
}

func (iv Interval) Start() time.Time        { return iv.start }
func (iv Interval) End() time.Time          { return iv.end }
func (iv Interval) Duration() time.Duration { return iv.end.Sub(iv.start) }

// Overlaps reports whether two periods share at least one instant.
// Touching boundaries count as adjacency, so back-to-back bookings are legal.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

// Contains reports whether t falls inside the period.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
