package request

type CreateGearRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

type ListGearRequestsQuery struct {
	Offset int32 `form:"from" binding:"gte=0"`
	Limit  int32 `form:"size" binding:"gte=0"`
}
