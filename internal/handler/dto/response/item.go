package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     uuid.UUID           `json:"ownerId"`
	RequestID   *uuid.UUID          `json:"requestId,omitempty"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	Last        *BookingRefResponse `json:"lastBooking,omitempty"`
	Next        *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse   `json:"comments"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return &resp
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	responses := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromItemView(rm)
	}
	return responses
}
