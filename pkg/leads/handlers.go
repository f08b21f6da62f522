// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/hubsign/landing-service/internal/http/types"
	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
)

const (
	msgContactReceived = "Thank you for contacting us! We'll get back to you soon."
	msgSubscribed      = "You're subscribed! Watch your inbox for updates."
	msgInvalidEmail    = "Valid email address is required"
	msgFailed          = "Something went wrong. Please try again."
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/contact/", a.handleContact)
	mux.Post("/api/newsletter/", a.handleNewsletter)
}

func (a *API) handleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	_, err := a.service.SubmitContact(r.Context(), ContactForm(req))
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Response{Success: true, Message: msgContactReceived})
}

func (a *API) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	if err := a.service.SubscribeNewsletter(r.Context(), req.Email); err != nil {
		a.writeError(w, err)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Response{Success: true, Message: msgSubscribed})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: msgInvalidEmail})
	case errors.Is(err, ErrValidation):
		// strip the sentinel prefix, the field message is enough for the form
		msg := strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: msg})
	default:
		a.logger.Errorf("lead submission failed: %v", err)
		_ = httptypes.WriteJSON(w, http.StatusInternalServerError, Response{Message: msgFailed})
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
