package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"nearby/cmd/fx/controllers_fx"
	"nearby/cmd/fx/curated_fx"
	"nearby/cmd/fx/discovery_fx"
	"nearby/cmd/fx/logger_fx"
	"nearby/cmd/fx/memcache_fx"
	"nearby/cmd/fx/places_fx"
	"nearby/internal/api/controllers"
	"nearby/pkg/middleware"
	"nearby/pkg/utils"
)

func main() {
	utils.LoadEnv()

	app := fx.New(
		logger_fx.Module,
		places_fx.Module,
		curated_fx.Module,
		memcache_fx.Module,
		discovery_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + utils.GetEnvWithDefault("PORT", "8080"),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	discoveryController *controllers.DiscoveryController,
	curatedController *controllers.CuratedController,
	healthController *controllers.HealthController) *gin.Engine {

	if utils.GetEnvWithDefault("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	controllers.RegisterRoutes(r, discoveryController, curatedController, healthController)

	return r
}
