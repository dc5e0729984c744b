package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-stats/external/fotmob"
	"github.com/riskibarqy/football-stats/internal/config"
	"github.com/riskibarqy/football-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-stats/internal/platform/cache"
	idgen "github.com/riskibarqy/football-stats/internal/platform/id"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := cache.NewStore(cfg.CacheTTL)
	provider := fotmob.NewClient(fotmob.ClientConfig{
		BaseURL:     cfg.FotMobBaseURL,
		AccessToken: cfg.FotMobAccessToken,
		Timeout:     cfg.FotMobTimeout,
		Retry: resilience.RetryPolicy{
			MaxRetries: cfg.FotMobMaxRetries,
		},
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FotMobCircuitEnabled,
			FailureThreshold: cfg.FotMobCircuitFailureCount,
			OpenTimeout:      cfg.FotMobCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FotMobCircuitHalfOpenMaxReq,
		},
		Cache:  store,
		Logger: logger,
	})

	seasonResolver := usecase.NewSeasonResolver(provider, logger)
	standingSvc := usecase.NewLeagueStandingService(provider)
	leaderboardSvc := usecase.NewLeaderboardService(provider, seasonResolver, logger)
	fixtureSvc := usecase.NewFixtureService(provider, cfg.FixturesLimit, logger)
	enrichmentSvc := usecase.NewEnrichmentService(provider, standingSvc, cfg.PenaltyEnrichmentWorkers, logger)
	leagueViewSvc := usecase.NewLeagueViewService(standingSvc, leaderboardSvc, fixtureSvc, enrichmentSvc, time.Now)
	teamStatsSvc := usecase.NewTeamStatsService(provider)
	playerProfileSvc := usecase.NewPlayerProfileService(provider)

	handler := httpapi.NewHandler(leagueViewSvc, teamStatsSvc, playerProfileSvc, fixtureSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         idgen.NewUUIDGenerator(),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	logger.Info("http server configured",
		"addr", cfg.HTTPAddr,
		"cache_ttl", cfg.CacheTTL,
		"fotmob_base_url", cfg.FotMobBaseURL,
		"fotmob_token_set", cfg.FotMobAccessToken != "",
		"penalty_workers", cfg.PenaltyEnrichmentWorkers,
	)

	return server, nil
}
