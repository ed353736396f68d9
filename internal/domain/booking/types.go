package booking

import "errors"

var ErrUnsupportedState = errors.New("unsupported state")

// Status is the lifecycle state of a single booking. A booking is created
// WAITING and is decided exactly once; both outcomes are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the booking left WAITING.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// State names a time- or status-based partition of a user's bookings.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState rejects unknown partition names instead of defaulting to ALL.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(s), nil
	default:
		return "", ErrUnsupportedState
	}
}

func (s State) String() string {
	return string(s)
}
