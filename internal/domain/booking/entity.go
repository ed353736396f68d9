package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyDecided = errors.New("booking is already decided")
	ErrInvalidStatus  = errors.New("invalid booking status")
)

// Booking is one request to use an item for an interval. The status is the
// only field that may change after creation.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	interval  Interval
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking. Ownership and availability gates run
// in the usecase layer; the entity only guards its own invariants.
func NewBooking(itemID, bookerID uuid.UUID, interval Interval) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		interval: interval,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	interval Interval,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		interval:  interval,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Decide moves WAITING to APPROVED or REJECTED. Any second decision fails,
// regardless of the requested outcome: decided states never re-enter WAITING.
func (b *Booking) Decide(approve bool) error {
	if b.status.IsDecided() {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// Blocks reports whether this booking occupies its interval on the item's
// schedule. WAITING requests block equally with APPROVED ones so a pending
// request cannot be double-booked while it awaits a decision.
func (b *Booking) Blocks() bool {
	return b.status == StatusWaiting || b.status == StatusApproved
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Interval() Interval   { return b.interval }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
