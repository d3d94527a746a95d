package bootstrap

import (
	"shareit/cmd/bootstrap/components"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

func NewModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		TracingModule,
		CacheModule(cfg.Cache),
	}
	if cfg.DB.Driver == config.StorageDriverPostgres {
		opts = append(opts, DBModule)
	}
	opts = append(opts,
		components.PersistenceModule(cfg.DB.Driver),
		components.UseCaseModule,
		components.HandlerModule,
	)
	return fx.Options(opts...)
}
