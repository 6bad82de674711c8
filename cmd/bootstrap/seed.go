package bootstrap

import (
	"context"
	"log/slog"

	"meeting-room-approval/internal/pkg/config"
	"meeting-room-approval/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin runs after the pool hook, so migrations are already applied.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, users commands.UserCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := users.EnsureAdmin(ctx, commands.AdminSeed{
				Username: cfg.Admin.Username,
				Password: cfg.Admin.Password,
				Email:    cfg.Admin.Email,
				FullName: cfg.Admin.FullName,
				Whatsapp: cfg.Admin.Whatsapp,
			})
			if err != nil {
				return err
			}
			if !created && cfg.Admin.Username != "" {
				slog.Info("admin account already present", "username", cfg.Admin.Username)
			}
			return nil
		},
	})
}
