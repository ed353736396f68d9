package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RequestItemResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
}

type GearRequestResponse struct {
	ID          uuid.UUID             `json:"id"`
	RequesterID uuid.UUID             `json:"requesterId"`
	Description string                `json:"description"`
	Items       []RequestItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func FromRequestView(rm *queries.RequestView) *GearRequestResponse {
	var resp GearRequestResponse
	_ = copier.Copy(&resp, rm)
	if resp.Items == nil {
		resp.Items = []RequestItemResponse{}
	}
	return &resp
}

func FromRequestViews(rms []*queries.RequestView) []*GearRequestResponse {
	responses := make([]*GearRequestResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromRequestView(rm)
	}
	return responses
}
