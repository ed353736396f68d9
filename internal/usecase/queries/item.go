package queries

import (
	"context"
	"strings"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	// GetByID returns the item with its comments; the owner additionally sees
	// the last/next approved booking projection.
	GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error)
	// ListOwned returns the requester's items, each with its projection and
	// comments attached.
	ListOwned(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	// Search matches available items by name or description. A blank query
	// yields an empty result, not an error.
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	CommentsByItemIDs(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]CommentView, error)
}

// BookingProjectionStore answers the last/next approved booking for a batch
// of items in at most two bulk queries.
type BookingProjectionStore interface {
	LastNextByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time) (map[uuid.UUID]LastNext, error)
}

type itemQueriesImpl struct {
	items       ItemReadStore
	projections BookingProjectionStore
	clock       clock.Clock
	limits      PageLimits
}

func NewItemQueries(items ItemReadStore, projections BookingProjectionStore, clk clock.Clock, limits PageLimits) ItemQueries {
	return &itemQueriesImpl{
		items:       items,
		projections: projections,
		clock:       clk,
		limits:      limits,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	comments, err := q.items.CommentsByItemIDs(ctx, []uuid.UUID{itemID})
	if err != nil {
		return nil, err
	}
	view.Comments = commentsOrEmpty(comments[itemID])

	// Only the owner sees the schedule projection.
	if view.OwnerID == requesterID {
		pairs, err := q.projections.LastNextByItemIDs(ctx, []uuid.UUID{itemID}, q.clock.Now())
		if err != nil {
			return nil, err
		}
		attachProjection(view, pairs)
	}

	return view, nil
}

func (q *itemQueriesImpl) ListOwned(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error) {
	views, err := q.items.ListByOwner(ctx, ownerID, q.limits.Normalize(page))
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	itemIDs := make([]uuid.UUID, len(views))
	for i, v := range views {
		itemIDs[i] = v.ID
	}

	// Two bulk queries for the whole listing, never one per item.
	pairs, err := q.projections.LastNextByItemIDs(ctx, itemIDs, q.clock.Now())
	if err != nil {
		return nil, err
	}
	comments, err := q.items.CommentsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		attachProjection(v, pairs)
		v.Comments = commentsOrEmpty(comments[v.ID])
	}

	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text, q.limits.Normalize(page))
}

func attachProjection(view *ItemView, pairs map[uuid.UUID]LastNext) {
	if pair, ok := pairs[view.ID]; ok {
		view.Last = pair.Last
		view.Next = pair.Next
	}
}

func commentsOrEmpty(comments []CommentView) []CommentView {
	if comments == nil {
		return []CommentView{}
	}
	return comments
}
