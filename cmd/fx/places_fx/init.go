package places_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"nearby/internal/discovery"
	"nearby/internal/providers/googleplaces"
	"nearby/pkg/utils"
)

var defaultContextTokens = []string{"Vietnam", "Việt Nam", "Hanoi", "Hà Nội"}

var Module = fx.Provide(
	provideSearchClient,
	provideTaxonomy,
	provideAdapter,
	provideNormalizer,
	provideAggregator,
	provideEngine,
)

func provideSearchClient() (discovery.SearchClient, error) {
	client, err := googleplaces.NewClient(
		context.Background(),
		utils.GetEnvWithDefault("GOOGLE_PLACES_API_KEY", ""),
		utils.GetEnvWithDefault("PLACES_LANGUAGE", "vi"),
	)
	if err != nil {
		return nil, fmt.Errorf("places client: %w", err)
	}
	return client, nil
}

func provideTaxonomy(logger *zap.Logger) (discovery.CategoryTaxonomy, error) {
	path := utils.GetEnvWithDefault("TAXONOMY_FILE", "")
	if path == "" {
		return discovery.DefaultTaxonomy(), nil
	}
	taxonomy, err := discovery.LoadTaxonomyFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded taxonomy", zap.String("file", path), zap.Strings("categories", taxonomy.Categories()))
	return taxonomy, nil
}

func provideAdapter(client discovery.SearchClient, logger *zap.Logger) *discovery.ProviderAdapter {
	timeout := utils.GetEnvDuration("PROVIDER_TIMEOUT", discovery.DefaultProviderTimeout)
	return discovery.NewProviderAdapter(client, logger.Named("provider"), discovery.WithTimeout(timeout))
}

func provideNormalizer() *discovery.Normalizer {
	return discovery.NewNormalizer(utils.GetEnvList("SEARCH_CONTEXT_TOKENS", defaultContextTokens))
}

func provideAggregator(adapter *discovery.ProviderAdapter, normalizer *discovery.Normalizer, logger *zap.Logger) *discovery.Aggregator {
	return discovery.NewAggregator(adapter, normalizer, discovery.DefaultPacingPolicy(), logger.Named("aggregator"))
}

func provideEngine(aggregator *discovery.Aggregator, logger *zap.Logger) *discovery.Engine {
	return discovery.NewEngine(aggregator, logger.Named("engine"))
}
