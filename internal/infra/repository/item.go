package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemRepository struct {
	db db.Querier
}

func NewItemRepository(q db.Querier) *ItemRepository {
	return &ItemRepository{db: q}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	const sql = `
		INSERT INTO items (id, owner_id, request_id, name, description, available)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(i.ID()),
		pgconv.UUIDToPgtype(i.OwnerID()),
		pgconv.UUIDPtrToPgtype(i.RequestID()),
		i.Name(),
		i.Description(),
		i.Available(),
	)
	if err != nil {
		return classifyWriteErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const sql = `
		SELECT id, owner_id, request_id, name, description, available, created_at, updated_at
		FROM items
		WHERE id = $1`

	var (
		itemID, ownerID      pgtype.UUID
		requestID            pgtype.UUID
		name, description    string
		available            bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(
		&itemID, &ownerID, &requestID, &name, &description, &available, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return item.ReconstructItem(
		uuid.UUID(itemID.Bytes),
		uuid.UUID(ownerID.Bytes),
		pgconv.UUIDPtrFromPgtype(requestID),
		name,
		description,
		available,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	const sql = `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(i.ID()),
		i.Name(),
		i.Description(),
		i.Available(),
	)
	if err != nil {
		return classifyWriteErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
