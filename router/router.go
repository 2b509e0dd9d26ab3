// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/cliparse"
	"github.com/tor-iv/foe-finder-sub000/db"
	"github.com/tor-iv/foe-finder-sub000/handlers"
	"github.com/tor-iv/foe-finder-sub000/middleware"
)

func NewRouter(conn *db.DB, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(conn, cfg)
	responsesHandler := handlers.NewResponsesHandler(conn, cat, cfg)
	resultsHandler := handlers.NewResultsHandler(conn, cat, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(conn, cat, cfg)
	catalogHandler := handlers.NewCatalogHandler(cat)

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKeySalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(catalogHandler.ListQuestions))
	mux.HandleFunc("GET /neighborhoods", middleware.WithLogging(catalogHandler.ListNeighborhoods))

	// Users
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /users/me", middleware.WithLogging(userHandler.GetMe))

	// Questionnaire
	mux.HandleFunc("PUT /users/me/responses", middleware.WithLogging(responsesHandler.Submit))
	mux.HandleFunc("GET /users/me/responses", middleware.WithLogging(responsesHandler.GetMine))

	// Results
	mux.HandleFunc("GET /users/me/hot-takes", middleware.WithLogging(resultsHandler.GetHotTakes))
	mux.HandleFunc("GET /users/me/disagreement", middleware.WithLogging(resultsHandler.GetDisagreement))
	mux.HandleFunc("GET /users/me/neighborhood", middleware.WithLogging(resultsHandler.GetNeighborhood))
	mux.HandleFunc("GET /users/me/outliers", middleware.WithLogging(resultsHandler.GetOutliers))

	// Population analytics (requires X-Admin-Key)
	mux.HandleFunc("GET /admin/statistics", admin(analyticsHandler.GetStatistics))
	mux.HandleFunc("POST /admin/statistics/refresh", admin(analyticsHandler.Refresh))
	mux.HandleFunc("GET /admin/questions/{id}/distribution", admin(analyticsHandler.GetDistribution))
	mux.HandleFunc("GET /admin/users", admin(analyticsHandler.ListUsers))
	mux.HandleFunc("GET /admin/users/stats", admin(analyticsHandler.GetUserStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("foe-finder API v1"))
	})

	return mux
}
