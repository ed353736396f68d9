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

type ItemReadStore struct {
	db db.Querier
}

func NewItemReadStore(q db.Querier) *ItemReadStore {
	return &ItemReadStore{db: q}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const sql = `
		SELECT i.id, i.owner_id, i.request_id, i.name, i.description, i.available, i.created_at, i.updated_at
		FROM items i
		WHERE i.id = $1`

	row := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id))
	view, err := scanItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return view, nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]*queries.ItemView, error) {
	const sql = `
		SELECT i.id, i.owner_id, i.request_id, i.name, i.description, i.available, i.created_at, i.updated_at
		FROM items i
		WHERE i.owner_id = $1
		ORDER BY i.created_at, i.id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, sql, pgconv.UUIDToPgtype(ownerID), page.Limit, page.Offset)
}

// Search matches name or description case-insensitively, available items
// only. Blank-query handling lives in the usecase.
func (r *ItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	const sql = `
		SELECT i.id, i.owner_id, i.request_id, i.name, i.description, i.available, i.created_at, i.updated_at
		FROM items i
		WHERE i.available
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.created_at, i.id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, sql, text, page.Limit, page.Offset)
}

func (r *ItemReadStore) CommentsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	const sql = `
		SELECT c.item_id, c.id, u.name AS author_name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at, c.id`

	ids := make([]pgtype.UUID, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = pgconv.UUIDToPgtype(id)
	}

	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load comments", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]queries.CommentView)
	for rows.Next() {
		var (
			itemID, commentID pgtype.UUID
			authorName, text  string
			createdAt         pgtype.Timestamptz
		)
		if err := rows.Scan(&itemID, &commentID, &authorName, &text, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		key := uuid.UUID(itemID.Bytes)
		result[key] = append(result[key], queries.CommentView{
			ID:         uuid.UUID(commentID.Bytes),
			AuthorName: authorName,
			Text:       text,
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return result, nil
}

func (r *ItemReadStore) queryItems(ctx context.Context, sql string, args ...any) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var (
		itemID, ownerID      pgtype.UUID
		requestID            pgtype.UUID
		name, description    string
		available            bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&itemID, &ownerID, &requestID, &name, &description, &available, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.ItemView{
		ID:          uuid.UUID(itemID.Bytes),
		OwnerID:     uuid.UUID(ownerID.Bytes),
		RequestID:   pgconv.UUIDPtrFromPgtype(requestID),
		Name:        name,
		Description: description,
		Available:   available,
		Comments:    []queries.CommentView{},
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:   pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
