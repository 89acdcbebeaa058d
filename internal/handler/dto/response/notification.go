package response

import (
	"time"

	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		var resp NotificationResponse
		_ = copier.Copy(&resp, v)
		out = append(out, &resp)
	}
	return out
}
