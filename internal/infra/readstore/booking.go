package readstore

import (
	"context"
	"fmt"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewColumns = `
	b.id, b.item_id, i.name AS item_name, b.booker_id, u.name AS booker_name,
	i.owner_id, b.start_at, b.end_at, b.status, b.created_at, b.updated_at`

type BookingReadStore struct {
	db db.Querier
}

func NewBookingReadStore(q db.Querier) *BookingReadStore {
	return &BookingReadStore{db: q}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1`, bookingViewColumns)

	row := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// ListByRole is the one query path for every partition. The role picks the
// foreign key, the state picks the predicate and sort direction, and the rest
// of the statement is shared.
func (r *BookingReadStore) ListByRole(
	ctx context.Context,
	role queries.Role,
	userID uuid.UUID,
	state booking.State,
	now time.Time,
	page queries.Page,
) ([]*queries.BookingView, error) {
	sql, args := buildListByRoleQuery(role, userID, state, now, page)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func buildListByRoleQuery(
	role queries.Role,
	userID uuid.UUID,
	state booking.State,
	now time.Time,
	page queries.Page,
) (string, []any) {
	roleColumn := "b.booker_id"
	if role == queries.RoleOwner {
		roleColumn = "i.owner_id"
	}

	args := []any{pgconv.UUIDToPgtype(userID)}
	predicate := ""
	direction := "DESC"

	switch state {
	case booking.StateAll:
	case booking.StateCurrent:
		// CURRENT reads soonest-ending first; every other partition is
		// newest-start first.
		predicate = " AND b.start_at <= $2 AND b.end_at > $2"
		direction = "ASC"
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.StatePast:
		predicate = " AND b.end_at <= $2"
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.StateFuture:
		predicate = " AND b.start_at > $2"
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.StateWaiting:
		predicate = " AND b.status = 'WAITING'"
	case booking.StateRejected:
		predicate = " AND b.status = 'REJECTED'"
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE %s = $1%s
		ORDER BY b.start_at %s, b.id
		LIMIT $%d OFFSET $%d`,
		bookingViewColumns, roleColumn, predicate, direction, len(args)+1, len(args)+2)

	args = append(args, page.Limit, page.Offset)
	return sql, args
}

// LastNextByItemIDs resolves the owner-facing projection for a whole batch of
// items: one query for the most recent started approved booking per item, one
// for the soonest upcoming.
func (r *BookingReadStore) LastNextByItemIDs(
	ctx context.Context,
	itemIDs []uuid.UUID,
	now time.Time,
) (map[uuid.UUID]queries.LastNext, error) {
	const lastSQL = `
		SELECT DISTINCT ON (b.item_id) b.item_id, b.id, b.booker_id, b.start_at, b.end_at
		FROM bookings b
		WHERE b.item_id = ANY($1)
		  AND b.status = 'APPROVED'
		  AND b.start_at <= $2
		ORDER BY b.item_id, b.start_at DESC`

	const nextSQL = `
		SELECT DISTINCT ON (b.item_id) b.item_id, b.id, b.booker_id, b.start_at, b.end_at
		FROM bookings b
		WHERE b.item_id = ANY($1)
		  AND b.status = 'APPROVED'
		  AND b.start_at > $2
		ORDER BY b.item_id, b.start_at ASC`

	ids := make([]pgtype.UUID, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = pgconv.UUIDToPgtype(id)
	}
	nowArg := pgconv.TimeToPgtype(now)

	result := make(map[uuid.UUID]queries.LastNext, len(itemIDs))

	lasts, err := r.queryRefs(ctx, lastSQL, ids, nowArg)
	if err != nil {
		return nil, err
	}
	for itemID, ref := range lasts {
		pair := result[itemID]
		pair.Last = ref
		result[itemID] = pair
	}

	nexts, err := r.queryRefs(ctx, nextSQL, ids, nowArg)
	if err != nil {
		return nil, err
	}
	for itemID, ref := range nexts {
		pair := result[itemID]
		pair.Next = ref
		result[itemID] = pair
	}

	return result, nil
}

func (r *BookingReadStore) queryRefs(ctx context.Context, sql string, args ...any) (map[uuid.UUID]*queries.BookingRef, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking projection", err)
	}
	defer rows.Close()

	refs := make(map[uuid.UUID]*queries.BookingRef)
	for rows.Next() {
		var (
			itemID, bookingID, bookerID pgtype.UUID
			startAt, endAt              pgtype.Timestamptz
		)
		if err := rows.Scan(&itemID, &bookingID, &bookerID, &startAt, &endAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking projection", err)
		}
		refs[uuid.UUID(itemID.Bytes)] = &queries.BookingRef{
			ID:       uuid.UUID(bookingID.Bytes),
			BookerID: uuid.UUID(bookerID.Bytes),
			Start:    pgconv.TimeFromPgtype(startAt),
			End:      pgconv.TimeFromPgtype(endAt),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking projection", err)
	}
	return refs, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		bookingID, itemID, bookerID, ownerID pgtype.UUID
		itemName, bookerName, status         string
		startAt, endAt                       pgtype.Timestamptz
		createdAt, updatedAt                 pgtype.Timestamptz
	)
	err := row.Scan(
		&bookingID, &itemID, &itemName, &bookerID, &bookerName,
		&ownerID, &startAt, &endAt, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:        uuid.UUID(bookingID.Bytes),
		Item:      queries.ItemRef{ID: uuid.UUID(itemID.Bytes), Name: itemName},
		Booker:    queries.UserRef{ID: uuid.UUID(bookerID.Bytes), Name: bookerName},
		OwnerID:   uuid.UUID(ownerID.Bytes),
		Start:     pgconv.TimeFromPgtype(startAt),
		End:       pgconv.TimeFromPgtype(endAt),
		Status:    status,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		UpdatedAt: pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
