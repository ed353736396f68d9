package request

import "github.com/google/uuid"

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type PatchItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type SearchItemsQuery struct {
	Text   string `form:"text"`
	Offset int32  `form:"from" binding:"gte=0"`
	Limit  int32  `form:"size" binding:"gte=0"`
}
