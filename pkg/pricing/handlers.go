// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/hubsign/landing-service/internal/http/types"
	"github.com/hubsign/landing-service/internal/logging"
)

type API struct {
	catalog Catalog

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/pricing/", a.handlePricing)
}

func (a *API) handlePricing(w http.ResponseWriter, r *http.Request) {
	if err := httptypes.WriteJSON(w, http.StatusOK, a.catalog); err != nil {
		a.logger.Errorf("failed to write pricing response: %v", err)
	}
}

func NewAPI(catalog Catalog, logger logging.LoggerInterface) *API {
	a := new(API)

	a.catalog = catalog
	a.logger = logger

	return a
}
