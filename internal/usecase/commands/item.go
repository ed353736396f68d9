package commands

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner          = errs.New("actor does not own the item")
	ErrItemValidation    = errs.New("item validation failed")
	ErrCommentNotAllowed = errs.New("commenting requires a finished booking")
	ErrCommentValidation = errs.New("comment validation failed")
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type PatchItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error)
	// Patch applies a partial update; only the owner may modify an item.
	Patch(ctx context.Context, actorID, itemID uuid.UUID, in PatchItemInput) error
	// AddComment is gated on the author having an APPROVED booking for the
	// item that has already ended.
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (uuid.UUID, error)
}

type itemCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error) {
	var createdID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.Users().FindByID(ctx, ownerID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		// An item answering a request must point at a request that exists.
		if in.RequestID != nil {
			exists, err := tx.Requests().Exists(ctx, *in.RequestID)
			if err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			if !exists {
				return ErrRequestNotFound
			}
		}

		itm, err := item.NewItem(ownerID, in.Name, in.Description, in.Available, in.RequestID)
		if err != nil {
			return errs.Mark(err, ErrItemValidation)
		}
		if err := tx.Items().Create(ctx, itm); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		createdID = itm.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *itemCommandsImpl) Patch(ctx context.Context, actorID, itemID uuid.UUID, in PatchItemInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.Users().FindByID(ctx, actorID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		itm, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return mapNotFound(err, ErrItemNotFound)
		}
		if !itm.IsOwnedBy(actorID) {
			return ErrNotOwner
		}

		if err := itm.Patch(in.Name, in.Description, in.Available); err != nil {
			return errs.Mark(err, ErrItemValidation)
		}
		if err := tx.Items().Update(ctx, itm); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return nil
	})
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (uuid.UUID, error) {
	var createdID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if _, err := tx.Users().FindByID(ctx, authorID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}
		if _, err := tx.Items().FindByID(ctx, itemID); err != nil {
			return mapNotFound(err, ErrItemNotFound)
		}

		finished, err := tx.Schedule().HasFinishedBooking(ctx, authorID, itemID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if !finished {
			return ErrCommentNotAllowed
		}

		comment, err := item.NewComment(itemID, authorID, text)
		if err != nil {
			return errs.Mark(err, ErrCommentValidation)
		}
		if err := tx.Comments().Create(ctx, comment); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		createdID = comment.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
