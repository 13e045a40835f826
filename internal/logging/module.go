package logging

import (
	"context"
	"os"

	"nlp_qa/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is registered at the root scope rather than as an fx.Module: a
// decorator inside a module only reaches that module and its children.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(func(cfg config.Config) (*os.File, error) {
			return OpenLogFile(cfg.LogFile)
		}),
		fx.Decorate(func(base *zap.Logger, cfg config.Config, file *os.File) *zap.Logger {
			return AttachFileLogger(base, file, cfg.Debug)
		}),
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger, file *os.File) {
			if file == nil {
				return
			}
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					_ = logger.Sync()
					return file.Close()
				},
			})
		}),
	)
}
