// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

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
	msgSigninSent    = "Sign-in link sent! Check your email."
	msgMagicLinkSent = "Sign-in link sent to your email"
	msgSigninFailed  = "Unable to send sign-in link. Please try again."
	msgInvalidEmail  = "Valid email address is required"
	msgNameRequired  = "Name is required"
	msgInvalidToken  = "Invalid or expired token"
	msgVerifyFailed  = "Unable to verify sign-in link. Please try again."
	msgSignupCreated = "Account created successfully. Check your email to verify."
	msgSignupFailed  = "Signup failed. Please try again."
)

type SigninRequest struct {
	Email             string `json:"email" validate:"max=255"`
	Domain            string `json:"domain" validate:"max=255"`
	UseSharedInstance bool   `json:"use_shared_instance"`
}

type MagicLinkRequest struct {
	Email string `json:"email" validate:"max=255"`
}

type VerifyRequest struct {
	Token string `json:"token" validate:"required,max=512"`
}

type SignupRequest struct {
	Email   string `json:"email" validate:"max=255"`
	Name    string `json:"name" validate:"max=255"`
	Company string `json:"company" validate:"max=255"`
}

// Response is shared by every endpoint that reports an action outcome
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

type VerifyResponse struct {
	Valid       bool   `json:"valid"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/auth/signin/", a.handleSignin)
	mux.Post("/api/auth/magic-link/", a.handleMagicLink)
	mux.Post("/api/auth/verify/", a.handleVerify)
	mux.Post("/api/auth/signup/", a.handleSignup)
}

func (a *API) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	res, err := a.service.IssueSignIn(r.Context(), req.Email, Target{Domain: req.Domain, UseShared: req.UseSharedInstance})
	if err != nil {
		a.writeIssueError(w, err, msgSigninFailed)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Response{Success: true, Message: msgSigninSent, Email: res.Email})
}

func (a *API) handleMagicLink(w http.ResponseWriter, r *http.Request) {
	var req MagicLinkRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	if _, err := a.service.IssueSignIn(r.Context(), req.Email, Target{UseShared: true}); err != nil {
		a.writeIssueError(w, err, msgSigninFailed)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Response{Success: true, Message: msgMagicLinkSent})
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: err.Error()})
		return
	}

	_, err := a.service.SignUp(r.Context(), SignUp{Name: req.Name, Email: req.Email, Company: req.Company})
	if err != nil {
		a.writeIssueError(w, err, msgSignupFailed)
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusCreated, Response{Success: true, Message: msgSignupCreated})
}

func (a *API) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, VerifyResponse{Message: err.Error()})
		return
	}

	res, err := a.service.VerifyToken(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			_ = httptypes.WriteJSON(w, http.StatusBadRequest, VerifyResponse{Message: msgInvalidToken})
			return
		}

		a.logger.Errorf("token verification failed: %v", err)
		_ = httptypes.WriteJSON(w, http.StatusInternalServerError, VerifyResponse{Message: msgVerifyFailed})
		return
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, VerifyResponse{Valid: true, RedirectURL: res.RedirectURL})
}

func (a *API) writeIssueError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: msgInvalidEmail})
	case errors.Is(err, ErrNameRequired):
		_ = httptypes.WriteJSON(w, http.StatusBadRequest, Response{Message: msgNameRequired})
	default:
		a.logger.Errorf("sign-in issuance failed: %v", err)
		_ = httptypes.WriteJSON(w, http.StatusInternalServerError, Response{Message: internalMsg})
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
