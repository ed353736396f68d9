package repository

import (
	"context"
	"errors"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.Querier
}

func NewUserRepository(q db.Querier) *UserRepository {
	return &UserRepository{db: q}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const sql = `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.Name().Value(),
		u.PasswordHash(),
	)
	if err != nil {
		return classifyWriteErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const sql = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.findOne(ctx, sql, pgconv.UUIDToPgtype(id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const sql = `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.findOne(ctx, sql, email)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const sql = `
		UPDATE users
		SET email = $2, name = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.Name().Value(),
	)
	if err != nil {
		return classifyWriteErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const sql = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, pgconv.UUIDToPgtype(id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyAbsent {
			return infra.WrapRepoErr("user still referenced by items, bookings or requests", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, sql string, arg any) (*user.User, error) {
	var (
		userID               pgtype.UUID
		email, name, hash    string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&userID, &email, &name, &hash, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return user.ReconstructUser(
		uuid.UUID(userID.Bytes),
		user.ReconstructEmail(email),
		user.ReconstructName(name),
		hash,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
