// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, duration_ms) at
info, or error for 5xx responses.

# Admin Guard

	mux.HandleFunc("GET /admin/statistics",
		middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKeySalt, h.GetStatistics)))

Missing or wrong X-Admin-Key yields 401.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, X-User-Token.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitResponsesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Hashed with auth.HashIP before it is stored with a submission.
*/
package middleware
