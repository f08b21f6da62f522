// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/hubsign/landing-service/internal/http/types"
	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
)

const (
	msgInvalidDomain     = "Please enter a valid domain (e.g., yourcompany.com)"
	msgNoInstance        = "No dedicated instance found for this domain."
	msgSubdomainRequired = "Subdomain is required"
	msgInvalidSubdomain  = "Invalid subdomain format"
	msgOrgNotFound       = "Organization not found. Please check your subdomain or contact your administrator."
	msgInternal          = "Something went wrong. Please try again."
)

type LookupRequest struct {
	Domain string `json:"domain" validate:"required,max=255"`
}

type LookupResponse struct {
	Found             bool   `json:"found"`
	TenantName        string `json:"tenant_name,omitempty"`
	SigninURL         string `json:"signin_url,omitempty"`
	Subdomain         string `json:"subdomain,omitempty"`
	Message           string `json:"message,omitempty"`
	SharedInstanceURL string `json:"shared_instance_url,omitempty"`
	CanCreateAccount  bool   `json:"can_create_account,omitempty"`
}

type ValidateRequest struct {
	Subdomain string `json:"subdomain"`
}

type ValidateResponse struct {
	Valid       bool   `json:"valid"`
	RedirectURL string `json:"redirect_url,omitempty"`
	TenantName  string `json:"tenant_name,omitempty"`
	Message     string `json:"message,omitempty"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/auth/lookup/", a.handleLookup)
	mux.Post("/api/tenant/validate/", a.handleValidate)
}

func (a *API) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := a.service.ResolveDomain(r.Context(), req.Domain)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			_ = httptypes.WriteError(w, http.StatusBadRequest, msgInvalidDomain)
			return
		}
		a.logger.Errorf("tenant lookup failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if !res.Found {
		_ = httptypes.WriteJSON(w, http.StatusOK, LookupResponse{
			Message:           msgNoInstance,
			SharedInstanceURL: res.SharedInstanceURL,
			CanCreateAccount:  res.CanCreateAccount,
		})
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, LookupResponse{
		Found:      true,
		TenantName: res.TenantName,
		SigninURL:  res.RedirectURL,
		Subdomain:  res.Subdomain,
	})
}

func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, ValidateResponse{Message: err.Error()})
		return
	}

	if Normalize(req.Subdomain) == "" {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, ValidateResponse{Message: msgSubdomainRequired})
		return
	}

	res, err := a.service.ResolveSubdomain(r.Context(), req.Subdomain)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			_ = httptypes.WriteJSON(w, http.StatusBadRequest, ValidateResponse{Message: msgInvalidSubdomain})
			return
		}
		a.logger.Errorf("subdomain validation failed: %v", err)
		_ = httptypes.WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if !res.Found {
		_ = httptypes.WriteJSON(w, http.StatusNotFound, ValidateResponse{Message: msgOrgNotFound})
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, ValidateResponse{
		Valid:       true,
		RedirectURL: res.RedirectURL,
		TenantName:  res.TenantName,
	})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
