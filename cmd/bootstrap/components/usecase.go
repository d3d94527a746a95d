package components

import (
	"time"

	"shareit/internal/infra/cache"
	"shareit/internal/infra/metrics"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseReadSideModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		metrics.NewBookingEvents,
		fx.As(new(commands.BookingEvents)),
	),
)

type userReadSideParams struct {
	fx.In

	Origin queries.UserReadStore `name:"originUserStore"`
	Redis  *redis.Client         `optional:"true"`
	Config config.Config
}

type userReadSideResult struct {
	fx.Out

	Store    queries.UserReadStore
	Notifier commands.UserChangeNotifier
}

// NewUserReadSide puts the redis cache in front of user reads when a client is configured
func NewUserReadSide(p userReadSideParams) userReadSideResult {
	if p.Redis == nil {
		return userReadSideResult{Store: p.Origin, Notifier: commands.NopUserChangeNotifier{}}
	}
	ttl := p.Config.Cache.UserTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	c := cache.NewUserCache(p.Origin, p.Redis, ttl)
	return userReadSideResult{Store: c, Notifier: c}
}

var usecaseReadSideModule = fx.Module("usecase/readside",
	fx.Provide(
		NewUserReadSide,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewItemUseCase,
		commands.NewRequestUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewRequestQueries,
		queries.NewBookingQueries,
	),
)
