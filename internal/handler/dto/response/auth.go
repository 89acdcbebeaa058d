package response

import (
	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView  `json:"user"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}
