package repository

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReader struct {
	db db.Querier
}

func NewScheduleReader(q db.Querier) *ScheduleReader {
	return &ScheduleReader{db: q}
}

// BlockingIntervals returns WAITING and APPROVED periods that end after the
// cutoff, oldest start first. Finished bookings cannot conflict with anything
// new, so they are filtered at the source.
func (r *ScheduleReader) BlockingIntervals(ctx context.Context, itemID uuid.UUID, after time.Time) ([]booking.Interval, error) {
	const sql = `
		SELECT start_at, end_at
		FROM bookings
		WHERE item_id = $1
		  AND status IN ('WAITING', 'APPROVED')
		  AND end_at > $2
		ORDER BY start_at ASC`

	return r.queryIntervals(ctx, sql, pgconv.UUIDToPgtype(itemID), pgconv.TimeToPgtype(after))
}

// ApprovedIntervals is the approval-time guard's view: APPROVED periods only,
// with the booking under decision excluded from its own check.
func (r *ScheduleReader) ApprovedIntervals(ctx context.Context, itemID uuid.UUID, exclude uuid.UUID, after time.Time) ([]booking.Interval, error) {
	const sql = `
		SELECT start_at, end_at
		FROM bookings
		WHERE item_id = $1
		  AND id <> $2
		  AND status = 'APPROVED'
		  AND end_at > $3
		ORDER BY start_at ASC`

	return r.queryIntervals(ctx, sql,
		pgconv.UUIDToPgtype(itemID), pgconv.UUIDToPgtype(exclude), pgconv.TimeToPgtype(after))
}

func (r *ScheduleReader) HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	const sql = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE booker_id = $1
			  AND item_id = $2
			  AND status = 'APPROVED'
			  AND end_at <= $3
		)`

	var exists bool
	err := r.db.QueryRow(ctx, sql,
		pgconv.UUIDToPgtype(bookerID), pgconv.UUIDToPgtype(itemID), pgconv.TimeToPgtype(now),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

func (r *ScheduleReader) queryIntervals(ctx context.Context, sql string, args ...any) ([]booking.Interval, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load schedule intervals", err)
	}
	defer rows.Close()

	var intervals []booking.Interval
	for rows.Next() {
		var startAt, endAt pgtype.Timestamptz
		if err := rows.Scan(&startAt, &endAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule interval", err)
		}
		intervals = append(intervals, booking.ReconstructInterval(
			pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule intervals", err)
	}
	return intervals, nil
}
