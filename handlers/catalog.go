// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/tor-iv/foe-finder-sub000/catalog"
	"github.com/tor-iv/foe-finder-sub000/middleware"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListQuestions handles GET /questions
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.Questions())
}

// ListNeighborhoods handles GET /neighborhoods
func (h *CatalogHandler) ListNeighborhoods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.catalog.Neighborhoods())
}
