package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name must not be empty")
	ErrEmptyDescription = errors.New("item description must not be empty")
	ErrNotOwner         = errors.New("actor is not the item owner")
)

// Item is a listed thing that can be booked. Availability is a hard gate for
// new bookings but does not affect bookings already on the schedule. An item
// created in answer to a request carries that request's id.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	requestID   *uuid.UUID
	name        string
	description string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, ErrEmptyName
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		requestID:   requestID,
		name:        name,
		description: description,
		available:   available,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	requestID *uuid.UUID,
	name, description string,
	available bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		requestID:   requestID,
		name:        name,
		description: description,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch applies a partial update. Nil fields are left untouched.
func (i *Item) Patch(name, description *string, available *bool) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		i.name = trimmed
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		if trimmed == "" {
			return ErrEmptyDescription
		}
		i.description = trimmed
	}
	if available != nil {
		i.available = *available
	}
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }
