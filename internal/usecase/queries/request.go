package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestQueries interface {
	// GetByID returns one request with the items answering it.
	GetByID(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error)
	// ListOwn returns the caller's requests, oldest first, each with its
	// answering items.
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	// ListOthers returns other users' requests, newest first, paged.
	ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListExcludingRequester(ctx context.Context, requesterID uuid.UUID, page Page) ([]*RequestView, error)
	ItemsByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]RequestItemRef, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	users    UserReadStore
	limits   PageLimits
}

func NewRequestQueries(requests RequestReadStore, users UserReadStore, limits PageLimits) RequestQueries {
	return &requestQueriesImpl{
		requests: requests,
		users:    users,
		limits:   limits,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return q.attachItems(ctx, []*RequestView{view})
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.requests.ListByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*RequestView, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	views, err := q.requests.ListExcludingRequester(ctx, userID, q.limits.Normalize(page))
	if err != nil {
		return nil, err
	}
	if _, err := q.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

// attachItems loads the answering items for all views in one bulk query.
func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) (*RequestView, error) {
	if len(views) == 0 {
		return nil, nil
	}

	requestIDs := make([]uuid.UUID, len(views))
	for i, v := range views {
		requestIDs[i] = v.ID
	}

	items, err := q.requests.ItemsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Items = items[v.ID]
		if v.Items == nil {
			v.Items = []RequestItemRef{}
		}
	}
	return views[0], nil
}
