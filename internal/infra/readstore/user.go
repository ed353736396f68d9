package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.Querier
}

func NewUserReadStore(q db.Querier) *UserReadStore {
	return &UserReadStore{db: q}
}

func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const sql = `
		SELECT id, email, name, created_at
		FROM users
		WHERE id = $1`

	var (
		userID      pgtype.UUID
		email, name string
		createdAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(&userID, &email, &name, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        uuid.UUID(userID.Bytes),
		Email:     email,
		Name:      name,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
