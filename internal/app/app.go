package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/match-analytics/internal/config"
	"github.com/riskibarqy/match-analytics/internal/domain/match"
	"github.com/riskibarqy/match-analytics/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-analytics/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/match-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-analytics/internal/platform/logging"
	"github.com/riskibarqy/match-analytics/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repo := newMatchRepository(cfg, logger)

	matchSvc := usecase.NewMatchService(repo, cfg.SeasonWorkers, logger)
	standingsSvc := usecase.NewStandingsService(repo, usecase.StandingsConfig{
		TotalMatchdays: cfg.SeasonTotalMatchdays,
		WindowDays:     cfg.SeasonMatchdayWindowDays,
		Workers:        cfg.SeasonWorkers,
	}, logger)
	playerSeasonSvc := usecase.NewPlayerSeasonService(repo, cfg.SeasonWorkers, logger)

	handler := httpapi.NewHandler(matchSvc, standingsSvc, playerSeasonSvc, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.ServiceName, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newMatchRepository(cfg config.Config, logger *logging.Logger) match.Repository {
	var repo match.Repository = csvfile.NewRepository(csvfile.Config{
		EventsDir:  cfg.EventsDir,
		PlayersDir: cfg.PlayersDir,
		LogosDir:   cfg.LogosDir,
	})
	if !cfg.CacheEnabled {
		return repo
	}

	logger.Info("match repository cache enabled", "ttl", cfg.CacheTTL.String())
	return cache.NewMatchRepository(repo, cfg.CacheTTL)
}
