package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description must not be empty")

// Request is a wish for gear nobody has listed yet. Owners answer it by
// creating an item that carries the request's id.
type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewRequest(requesterID uuid.UUID, description string) (*Request, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Request{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
	}, nil
}

func ReconstructRequest(id, requesterID uuid.UUID, description string, createdAt time.Time) *Request {
	return &Request{
		id:          id,
		requesterID: requesterID,
		description: description,
		createdAt:   createdAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Description() string    { return r.description }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
