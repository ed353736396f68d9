package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.Querier
}

func NewRequestReadStore(q db.Querier) *RequestReadStore {
	return &RequestReadStore{db: q}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const sql = `
		SELECT r.id, r.requester_id, r.description, r.created_at
		FROM requests r
		WHERE r.id = $1`

	row := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id))
	view, err := scanRequestView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return view, nil
}

// ListByRequester returns the user's own requests, oldest first.
func (r *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	const sql = `
		SELECT r.id, r.requester_id, r.description, r.created_at
		FROM requests r
		WHERE r.requester_id = $1
		ORDER BY r.created_at, r.id`

	return r.queryRequests(ctx, sql, pgconv.UUIDToPgtype(requesterID))
}

// ListExcludingRequester returns everyone else's requests, newest first.
func (r *RequestReadStore) ListExcludingRequester(ctx context.Context, requesterID uuid.UUID, page queries.Page) ([]*queries.RequestView, error) {
	const sql = `
		SELECT r.id, r.requester_id, r.description, r.created_at
		FROM requests r
		WHERE r.requester_id <> $1
		ORDER BY r.created_at DESC, r.id
		LIMIT $2 OFFSET $3`

	return r.queryRequests(ctx, sql, pgconv.UUIDToPgtype(requesterID), page.Limit, page.Offset)
}

func (r *RequestReadStore) ItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.RequestItemRef, error) {
	const sql = `
		SELECT i.request_id, i.id, i.owner_id, i.name, i.available
		FROM items i
		WHERE i.request_id = ANY($1)
		ORDER BY i.created_at, i.id`

	ids := make([]pgtype.UUID, len(requestIDs))
	for i, id := range requestIDs {
		ids[i] = pgconv.UUIDToPgtype(id)
	}

	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load answering items", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]queries.RequestItemRef)
	for rows.Next() {
		var (
			requestID, itemID, ownerID pgtype.UUID
			name                       string
			available                  bool
		)
		if err := rows.Scan(&requestID, &itemID, &ownerID, &name, &available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan answering item row", err)
		}
		key := uuid.UUID(requestID.Bytes)
		result[key] = append(result[key], queries.RequestItemRef{
			ID:        uuid.UUID(itemID.Bytes),
			OwnerID:   uuid.UUID(ownerID.Bytes),
			Name:      name,
			Available: available,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read answering item rows", err)
	}
	return result, nil
}

func (r *RequestReadStore) queryRequests(ctx context.Context, sql string, args ...any) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	views := []*queries.RequestView{}
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return views, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var (
		requestID, requesterID pgtype.UUID
		description            string
		createdAt              pgtype.Timestamptz
	)
	if err := row.Scan(&requestID, &requesterID, &description, &createdAt); err != nil {
		return nil, err
	}

	return &queries.RequestView{
		ID:          uuid.UUID(requestID.Bytes),
		RequesterID: uuid.UUID(requesterID.Bytes),
		Description: description,
		Items:       []queries.RequestItemRef{},
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
	}, nil
}
