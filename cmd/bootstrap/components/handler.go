package components

import (
	"meeting-room-approval/internal/handler"
	"meeting-room-approval/internal/handler/api"
	"meeting-room-approval/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMeetingRequestHandler,
		api.NewRegistryHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
