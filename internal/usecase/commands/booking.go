package commands

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrSelfBooking     = errs.New("owner cannot book own item")
	ErrItemUnavailable = errs.New("item is not available")
	ErrInvalidInterval = errs.New("invalid booking interval")
	ErrDateConflict    = errs.New("interval conflicts with an existing booking")
	ErrNotItemOwner    = errs.New("only the item owner may decide")
	ErrAlreadyDecided  = errs.New("booking is already decided")
	ErrStoreFailure    = errs.New("store operation failed")
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	// Create runs the full gate chain (user, item, self-booking,
	// availability flag, interval, schedule sweep) and inserts a WAITING
	// booking inside one per-item-serialized transaction.
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	// Decide moves a WAITING booking to APPROVED or REJECTED. Only the
	// owner of the booking's item may decide, exactly once.
	Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow          UnitOfWork
	bookingReads queries.BookingReadStore
	clock        clock.Clock
}

func NewBookingCommands(uow UnitOfWork, bookingReads queries.BookingReadStore, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		bookingReads: bookingReads,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	var createdID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.Users().FindByID(ctx, bookerID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		itm, err := tx.Items().FindByID(ctx, in.ItemID)
		if err != nil {
			return mapNotFound(err, ErrItemNotFound)
		}
		if itm.IsOwnedBy(bookerID) {
			return ErrSelfBooking
		}
		if !itm.Available() {
			return ErrItemUnavailable
		}

		now := c.clock.Now()
		interval, err := booking.NewInterval(in.Start, in.End, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidInterval)
		}

		// Serialize concurrent writers on this item before reading the
		// schedule, so the sweep and the insert are one atomic step.
		if err := tx.Bookings().LockItemSchedule(ctx, itm.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}

		blocking, err := tx.Schedule().BlockingIntervals(ctx, itm.ID(), now)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if !booking.NewSchedule(blocking).Fits(interval) {
			return ErrDateConflict
		}

		b := booking.NewBooking(itm.ID(), bookerID, interval)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, createdID)
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err, ErrBookingNotFound)
		}

		if _, err := tx.Users().FindByID(ctx, actorID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		itm, err := tx.Items().FindByID(ctx, b.ItemID())
		if err != nil {
			return mapNotFound(err, ErrItemNotFound)
		}
		if !itm.IsOwnedBy(actorID) {
			return ErrNotItemOwner
		}

		if err := b.Decide(approve); err != nil {
			if errors.Is(err, booking.ErrAlreadyDecided) {
				return ErrAlreadyDecided
			}
			return err
		}

		// Approval re-validates against the currently APPROVED set: two
		// WAITING requests that both passed the creation-time sweep must not
		// both end up APPROVED.
		if approve {
			if err := tx.Bookings().LockItemSchedule(ctx, itm.ID()); err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			approved, err := tx.Schedule().ApprovedIntervals(ctx, itm.ID(), b.ID(), b.Interval().Start())
			if err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			if !booking.NewSchedule(approved).Fits(b.Interval()) {
				return ErrDateConflict
			}
		}

		if err := tx.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusWaiting, b.Status()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAlreadyDecided
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

// readBack serves the response from the read store after commit, like every
// other booking view.
func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func mapNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return errs.Mark(err, ErrStoreFailure)
}
