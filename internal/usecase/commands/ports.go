package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one database transaction. A write and the
// reads it depends on always share a transaction so availability decisions
// never act on stale state.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Schedule() ScheduleReader
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus transitions from->to and fails with a conflict kind when
	// the row is no longer in the expected from status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error
	// LockItemSchedule takes the per-item transaction lock that serializes
	// concurrent writers against the same schedule.
	LockItemSchedule(ctx context.Context, itemID uuid.UUID) error
}

// ScheduleReader exposes the interval sets the availability sweep and the
// approval guard run against.
type ScheduleReader interface {
	// BlockingIntervals returns WAITING and APPROVED intervals for the item
	// that end after the given instant, ordered by start ascending.
	BlockingIntervals(ctx context.Context, itemID uuid.UUID, after time.Time) ([]booking.Interval, error)
	// ApprovedIntervals is the same for APPROVED only, excluding one booking.
	ApprovedIntervals(ctx context.Context, itemID uuid.UUID, exclude uuid.UUID, after time.Time) ([]booking.Interval, error)
	// HasFinishedBooking reports whether the booker has an APPROVED booking
	// for the item that already ended.
	HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *item.Comment) error
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
