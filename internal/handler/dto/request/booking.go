package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// ListBookingsQuery carries the partition key and offset paging. An absent
// state means ALL; an unknown one is rejected downstream, not defaulted.
type ListBookingsQuery struct {
	State  string `form:"state,default=ALL"`
	Offset int32  `form:"from" binding:"gte=0"`
	Limit  int32  `form:"size" binding:"gte=0"`
}
