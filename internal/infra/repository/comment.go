package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
)

type CommentRepository struct {
	db db.Querier
}

func NewCommentRepository(q db.Querier) *CommentRepository {
	return &CommentRepository{db: q}
}

func (r *CommentRepository) Create(ctx context.Context, c *item.Comment) error {
	const sql = `
		INSERT INTO comments (id, item_id, author_id, text)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, sql,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.ItemID()),
		pgconv.UUIDToPgtype(c.AuthorID()),
		c.Text(),
	)
	if err != nil {
		return classifyWriteErr("failed to create comment", err)
	}
	return nil
}
