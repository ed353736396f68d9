//go:build unit || e2e

package builder

import (
	"time"

	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ItemBuilder) WithOwnerID(id uuid.UUID) *ItemBuilder {
	b.OwnerID = id
	return b
}

func (b *ItemBuilder) WithAvailable(available bool) *ItemBuilder {
	b.Available = available
	return b
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		Comments:    []queries.CommentView{},
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
