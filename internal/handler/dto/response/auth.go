package response

import (
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		Name:      rm.Name,
		CreatedAt: rm.CreatedAt,
	}
}
