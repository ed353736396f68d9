package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.Querier
}

func NewBookingRepository(q db.Querier) *BookingRepository {
	return &BookingRepository{db: q}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const sql = `
		INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.TimeToPgtype(b.Interval().Start()),
		pgconv.TimeToPgtype(b.Interval().End()),
		b.Status().String(),
	)
	if err != nil {
		return classifyWriteErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const sql = `
		SELECT id, item_id, booker_id, start_at, end_at, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, itemID, bookerID  pgtype.UUID
		startAt, endAt               pgtype.Timestamptz
		status                       string
		createdAt, updatedAt         pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID, &itemID, &bookerID, &startAt, &endAt, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := booking.ReconstructBooking(
		uuid.UUID(bookingID.Bytes),
		uuid.UUID(itemID.Bytes),
		uuid.UUID(bookerID.Bytes),
		booking.ReconstructInterval(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt)),
		booking.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

// UpdateStatus is conditional on the row still holding the expected from
// status, so a decided booking can never be decided again by a racing owner.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error {
	const sql = `
		UPDATE bookings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, sql, pgconv.UUIDToPgtype(id), from.String(), to.String())
	if err != nil {
		return classifyWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking status already changed", nil, infra.KindConflict)
	}
	return nil
}

// LockItemSchedule serializes schedule writers per item for the rest of the
// transaction. hashtextextended folds the UUID into the bigint key space the
// advisory lock wants.
func (r *BookingRepository) LockItemSchedule(ctx context.Context, itemID uuid.UUID) error {
	const sql = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

	if _, err := r.db.Exec(ctx, sql, pgconv.UUIDToPgtype(itemID)); err != nil {
		return infra.WrapRepoErr("failed to lock item schedule", err)
	}
	return nil
}
