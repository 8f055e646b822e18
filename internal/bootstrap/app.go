// Package bootstrap assembles the harmscan service from configuration:
// storage, sidecar clients, the analysis pipeline, and the HTTP server.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/northwatch/harmscan/internal/analysis"
	"github.com/northwatch/harmscan/internal/api"
	"github.com/northwatch/harmscan/internal/config"
	"github.com/northwatch/harmscan/internal/history"
	"github.com/northwatch/harmscan/internal/httpserver"
	"github.com/northwatch/harmscan/internal/logging"
	"github.com/northwatch/harmscan/internal/model"
	"github.com/northwatch/harmscan/internal/modelclient"
	"github.com/northwatch/harmscan/internal/telemetry"
	"github.com/northwatch/harmscan/internal/trend"
	"github.com/northwatch/harmscan/internal/vectorclient"
)

// App holds the assembled service.
type App struct {
	Config *config.Config
	Logger logging.Logger
	Store  *history.Store
	Server *httpserver.Server
}

// New builds the full service from configuration.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	provider := telemetry.NewProvider()

	store, err := history.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	if cfg.Trend.SeedOnEmpty {
		seeded, seedErr := store.SeedIfEmpty(ctx, cfg.Trend.SeedDays, cfg.Trend.SeedRand)
		if seedErr != nil {
			store.Close()
			return nil, fmt.Errorf("seed history: %w", seedErr)
		}
		if seeded {
			log.Info("Seeded synthetic trend history",
				logging.Int("days", cfg.Trend.SeedDays))
		}
	}

	var modelProvider *model.Provider
	if cfg.Model.Enabled {
		client := modelclient.NewClient(cfg.Model.ServiceURL, cfg.Model.Timeout)
		modelProvider = model.NewProvider(client, cfg.Model.RPS, log)
	}

	// Keep the interface nil when the provider is nil.
	var scorerBackend analysis.ModelProvider
	if modelProvider != nil {
		scorerBackend = modelProvider
	}
	harmScorer := analysis.NewHarmScorer(scorerBackend, log, cfg.Model.Enabled)
	harmScorer.Probe(ctx)

	var index analysis.NarrativeIndex
	if cfg.Similarity.Enabled {
		index = &narrativeIndexAdapter{
			client: vectorclient.NewClient(cfg.Similarity.ServiceURL, cfg.Similarity.TopK, cfg.Similarity.Timeout),
		}
	}

	categorizer := trend.NewCategorizer()
	engine := trend.NewEngine(store, log)

	analyzer := analysis.NewAnalyzer(harmScorer, index, categorizer, engine, store, provider, log)

	var prober api.HealthProber
	if modelProvider != nil {
		prober = modelProvider
	}
	handler := api.NewHandler(analyzer, harmScorer, categorizer, engine, prober, provider, log)

	serverCfg := &httpserver.Config{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
	}

	server := httpserver.NewServer(serverCfg, log, func(router *gin.Engine) {
		registerHealth(router, cfg, store, modelProvider, index)
		api.RegisterRoutes(router, handler, provider, cfg.Auth.JWTSecret)
	})

	return &App{
		Config: cfg,
		Logger: log,
		Store:  store,
		Server: server,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	return a.Server.RunWithGracefulShutdown(ctx)
}

// Close releases held resources.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Warn("Failed to close history store", logging.Error(err))
	}
}

func registerHealth(
	router *gin.Engine,
	cfg *config.Config,
	store *history.Store,
	modelProvider *model.Provider,
	index analysis.NarrativeIndex,
) {
	checks := map[string]httpserver.HealthChecker{
		"database": httpserver.DatabaseHealthChecker(store.Ping),
	}

	if modelProvider != nil {
		checks["harm_model"] = httpserver.SidecarHealthChecker("harm-model", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Model.Timeout)
			defer cancel()
			return modelProvider.Health(ctx)
		})
	}

	if prober, ok := index.(interface{ Health(context.Context) error }); ok && prober != nil {
		checks["narrative_index"] = httpserver.SidecarHealthChecker("narrative-index", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Similarity.Timeout)
			defer cancel()
			return prober.Health(ctx)
		})
	}

	httpserver.RegisterHealthRoutes(router, httpserver.HealthOptions{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Checks:         checks,
	})
}

// narrativeIndexAdapter bridges the vectorclient wire types to the
// analysis interface.
type narrativeIndexAdapter struct {
	client *vectorclient.Client
}

func (n *narrativeIndexAdapter) Search(ctx context.Context, text string) ([]analysis.NarrativeMatch, error) {
	matches, err := n.client.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	result := make([]analysis.NarrativeMatch, len(matches))
	for i, m := range matches {
		result[i] = analysis.NarrativeMatch{
			Text:       m.Text,
			Similarity: m.Similarity,
		}
	}
	return result, nil
}

// Health exposes the underlying client's health probe for readiness checks.
func (n *narrativeIndexAdapter) Health(ctx context.Context) error {
	return n.client.Health(ctx)
}
