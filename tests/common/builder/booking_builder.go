//go:build unit || e2e

package builder

import (
	"time"

	"gearshare/internal/domain/booking"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID     uuid.UUID
	ItemName   string
	BookerID   uuid.UUID
	BookerName string
	OwnerID    uuid.UUID
	Start      time.Time
	End        time.Time
	Status     booking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		BookerID:   uuid.New(),
		BookerName: "Alice",
		OwnerID:    uuid.New(),
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(26 * time.Hour),
		Status:     booking.StatusWaiting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID:    b.ItemID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        uuid.New(),
		Item:      queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker:    queries.UserRef{ID: b.BookerID, Name: b.BookerName},
		OwnerID:   b.OwnerID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRef() *queries.BookingRef {
	return &queries.BookingRef{
		ID:       uuid.New(),
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
