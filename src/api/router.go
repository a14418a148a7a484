package api

import (
	"finsight-server/src/db"
	"finsight-server/src/handlers"
	"finsight-server/src/middleware"

	"github.com/go-chi/chi/v5"
)

func NewRouter(syncer handlers.ReportSyncer, cache *db.SuggestionCache) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", handlers.Health())
	r.Post("/suggestions", handlers.GetSuggestions(cache))
	r.Get("/reports", handlers.GetReports(syncer))

	return r
}
