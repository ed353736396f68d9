package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	Item      ItemRefResponse `json:"item"`
	Booker    UserRefResponse `json:"booker"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromBookingView(rm)
	}
	return responses
}
