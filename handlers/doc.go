// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the foe-finder API.

# Handler Types

Each handler is a struct holding the database, the question catalog and
config it needs:

  - UserHandler: Registration and the caller's profile
  - ResponsesHandler: Questionnaire submission and retakes
  - ResultsHandler: Hot takes, disagreement, neighborhood and outliers
  - AnalyticsHandler: Population statistics (admin only)
  - CatalogHandler: Questions and neighborhood profiles

Handlers are created via constructor functions:

	responses := handlers.NewResponsesHandler(conn, cat, cfg)

# Users

	POST /users            → Register (returns user_token)
	GET  /users/me         → GetMe
	PUT  /users/me/responses → Submit (201 first time, 200 on retake)
	GET  /users/me/responses → GetMine

User operations require the X-User-Token header. A retake replaces the
stored answer set wholesale.

# Results

	GET /users/me/hot-takes?count=N → GetHotTakes
	GET /users/me/disagreement      → GetDisagreement
	GET /users/me/neighborhood      → GetNeighborhood
	GET /users/me/outliers          → GetOutliers

All four return 404 until the caller has submitted.

# Statistics Snapshots

Population statistics are recomputed from every stored answer after each
submission and saved as a snapshot (statistics.go):

	snapshot, err := handlers.RefreshStatistics(ctx, conn, cat)

Reads use the newest snapshot, building one on demand when none exists.
Admin operations require the X-Admin-Key header.
*/
package handlers
