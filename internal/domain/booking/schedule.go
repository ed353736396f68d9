package booking

import "sort"

// Schedule is the ordered set of blocking intervals (WAITING and APPROVED
// bookings) already on an item. It answers whether a candidate interval fits
// into a free gap.
type Schedule struct {
	intervals []Interval
}

// NewSchedule builds a schedule from the item's blocking intervals. Input
// order does not matter; the sweep requires ascending starts.
func NewSchedule(intervals []Interval) Schedule {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})
	return Schedule{intervals: sorted}
}

// Fits sweeps the schedule left to right and reports whether the candidate
// occupies a free gap. Once an existing interval starts at or after the
// candidate's end no later interval can conflict, so the walk stops there.
// Shared boundaries are adjacency, not conflict.
func (s Schedule) Fits(candidate Interval) bool {
	for _, iv := range s.intervals {
		if !iv.start.Before(candidate.end) {
			break
		}
		if iv.Overlaps(candidate) {
			return false
		}
	}
	return true
}

// Len reports the number of blocking intervals.
func (s Schedule) Len() int {
	return len(s.intervals)
}
