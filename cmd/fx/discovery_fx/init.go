package discovery_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"nearby/internal/discovery"
	"nearby/internal/repositories"
	"nearby/internal/services"
	mem "nearby/pkg/memcache"
	"nearby/pkg/utils"
)

var Module = fx.Provide(provideDiscoveryConfig, provideDiscoveryService)

func provideDiscoveryConfig() services.DiscoveryConfig {
	cfg := services.DefaultDiscoveryConfig()
	cfg.MaxRadius = utils.GetEnvInt("DISCOVERY_MAX_RADIUS", cfg.MaxRadius)
	cfg.CacheTTL = utils.GetEnvDuration("DISCOVERY_CACHE_TTL", cfg.CacheTTL)
	return cfg
}

func provideDiscoveryService(
	engine *discovery.Engine,
	curatedRepo repositories.CuratedPlaceRepository,
	taxonomy discovery.CategoryTaxonomy,
	cache mem.TTLStore[discovery.Result],
	cfg services.DiscoveryConfig,
	logger *zap.Logger,
) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(engine, curatedRepo, taxonomy, cache, cfg, logger.Named("discovery"))
}
