package commands

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errs.New("request not found")
	ErrRequestValidation = errs.New("request validation failed")
)

type CreateRequestInput struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (uuid.UUID, error)
}

type requestCommandsImpl struct {
	uow UnitOfWork
}

func NewRequestCommands(uow UnitOfWork) RequestCommands {
	return &requestCommandsImpl{uow: uow}
}

func (c *requestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (uuid.UUID, error) {
	var createdID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.Users().FindByID(ctx, requesterID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		req, err := request.NewRequest(requesterID, in.Description)
		if err != nil {
			return errs.Mark(err, ErrRequestValidation)
		}
		if err := tx.Requests().Create(ctx, req); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		createdID = req.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
