package components

import (
	"time"

	"couponbid/internal/handler"
	"couponbid/internal/handler/api"
	"couponbid/internal/handler/middleware"
	"couponbid/internal/pkg/config"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewCouponHandler,
		api.NewWalletHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *api.AuthHandler {
	tokenTTL, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return api.NewAuthHandler(authCommands, userQueries, cfg.Cookie, tokenTTL)
}
