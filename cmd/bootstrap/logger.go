package bootstrap

import (
	"log/slog"

	"meeting-room-approval/internal/handler/middleware"
	"meeting-room-approval/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

// NewLogger also installs the logger as slog.Default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
