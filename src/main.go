package main

import (
	"context"
	"net/http"
	"time"

	"finsight-server/src/api"
	"finsight-server/src/auth"
	"finsight-server/src/config"
	"finsight-server/src/db"
	dbsql "finsight-server/src/db/sql"
	"finsight-server/src/logger"
	"finsight-server/src/reports"
	"finsight-server/src/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	cache, err := db.NewSuggestionCache(time.Minute)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize suggestion cache")
	}

	syncer := reports.NewSynchronizer(
		auth.NewVerifier(cfg.JWTSecret),
		summary.NewClient(cfg.SummaryAPIURL),
		dbsql.NewReportStore(pool),
	)

	router := api.NewRouter(syncer, cache)

	logger.Log.Info().Str("port", cfg.Port).Msg("API server running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server stopped")
	}
}
