package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrUserNotFound     = errs.New("user not found")
	ErrAccessDenied     = errs.New("requester is neither booker nor owner")
	ErrUnsupportedState = errs.New("unsupported state")
)

type BookingQueries interface {
	// GetByID returns the booking when the requester is its booker or the
	// owner of its item.
	GetByID(ctx context.Context, requesterID, id uuid.UUID) (*BookingView, error)
	// List returns one partition of the user's bookings, scoped by role.
	List(ctx context.Context, role Role, userID uuid.UUID, state string, page Page) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRole(ctx context.Context, role Role, userID uuid.UUID, state booking.State, now time.Time, page Page) ([]*BookingView, error)
}

type UserReadStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
	limits   PageLimits
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock, limits PageLimits) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
		limits:   limits,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if view.Booker.ID != requesterID && view.OwnerID != requesterID {
		return nil, ErrAccessDenied
	}

	return view, nil
}

// List evaluates the partition against a single now so every predicate in the
// query sees the same instant.
func (q *bookingQueriesImpl) List(ctx context.Context, role Role, userID uuid.UUID, state string, page Page) ([]*BookingView, error) {
	parsed, err := booking.ParseState(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnsupportedState)
	}

	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	return q.bookings.ListByRole(ctx, role, userID, parsed, q.clock.Now(), q.limits.Normalize(page))
}
