package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"nearby/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	}),
)

func provideLogger() (*zap.Logger, error) {
	if utils.GetEnvWithDefault("APP_ENV", "development") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
