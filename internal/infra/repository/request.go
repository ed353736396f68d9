package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RequestRepository struct {
	db db.Querier
}

func NewRequestRepository(q db.Querier) *RequestRepository {
	return &RequestRepository{db: q}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	const sql = `
		INSERT INTO requests (id, requester_id, description)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.RequesterID()),
		req.Description(),
	)
	if err != nil {
		return classifyWriteErr("failed to create request", err)
	}
	return nil
}

func (r *RequestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check request existence", err)
	}
	return exists, nil
}
