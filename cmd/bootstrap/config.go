package bootstrap

import (
	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the configuration loaded before the graph is built,
// since the storage driver decides which modules take part.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			NewBookingDateRule,
		),
	)
}

func NewBookingDateRule(cfg config.Config) dombooking.DateRule {
	return dombooking.ParseDateRule(cfg.Booking.DateRule)
}
