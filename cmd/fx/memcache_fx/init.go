package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"nearby/internal/discovery"
	mem "nearby/pkg/memcache"
)

const purgeInterval = time.Minute

var Module = fx.Provide(provideResultCache)

func provideResultCache(lc fx.Lifecycle, logger *zap.Logger) mem.TTLStore[discovery.Result] {
	cache := mem.NewTTLCache[discovery.Result]()
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := cache.Purge(); n > 0 {
							logger.Debug("purged expired discovery results", zap.Int("count", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			return nil
		},
	})
	return cache
}
