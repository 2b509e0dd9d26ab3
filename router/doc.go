// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the foe-finder API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cat, cfg)

# Endpoints

Health:

	GET /health

Catalog (public):

	GET /questions     - Question bank in display order
	GET /neighborhoods - Neighborhood profiles

Users (requires X-User-Token after registration):

	POST /users                - Register, returns user_token
	GET  /users/me             - Profile and completion state
	PUT  /users/me/responses   - Submit or retake the questionnaire
	GET  /users/me/responses   - Stored answers

Results (requires X-User-Token):

	GET /users/me/hot-takes?count=N - Strongest opinions
	GET /users/me/disagreement      - Share of answers far from the mean
	GET /users/me/neighborhood      - Nearest neighborhood profile
	GET /users/me/outliers          - Top and bottom decile answers

Analytics (requires X-Admin-Key):

	GET  /admin/statistics                  - Latest population snapshot
	POST /admin/statistics/refresh          - Recompute the snapshot
	GET  /admin/questions/{id}/distribution - Histogram for one question
	GET  /admin/users                       - Paged user list, newest first
	GET  /admin/users/stats                 - Registered and completed counts

All routes except /health and / are wrapped with middleware.WithLogging.
*/
package router
