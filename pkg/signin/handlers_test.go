// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "signin success",
			path: "/api/auth/signin/",
			body: `{"email":"user@acme.com","domain":"acme.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueSignIn(gomock.Any(), "user@acme.com", Target{Domain: "acme.com"}).
					Return(&IssueResult{Email: "user@acme.com", Token: "secret"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": true, "message": msgSigninSent, "email": "user@acme.com"},
		},
		{
			name: "signin with shared instance flag",
			path: "/api/auth/signin/",
			body: `{"email":"user@acme.com","domain":"acme.com","use_shared_instance":true}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueSignIn(gomock.Any(), "user@acme.com", Target{Domain: "acme.com", UseShared: true}).
					Return(&IssueResult{Email: "user@acme.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": true, "message": msgSigninSent, "email": "user@acme.com"},
		},
		{
			name: "signin invalid email",
			path: "/api/auth/signin/",
			body: `{"email":"nope","domain":"acme.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueSignIn(gomock.Any(), "nope", gomock.Any()).Return(nil, ErrInvalidEmail)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"success": false, "message": msgInvalidEmail},
		},
		{
			name: "signin issuance failure",
			path: "/api/auth/signin/",
			body: `{"email":"user@acme.com","domain":"acme.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueSignIn(gomock.Any(), "user@acme.com", gomock.Any()).Return(nil, ErrIssuanceFailed)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"success": false, "message": msgSigninFailed},
		},
		{
			name: "magic link targets shared instance",
			path: "/api/auth/magic-link/",
			body: `{"email":"user@acme.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueSignIn(gomock.Any(), "user@acme.com", Target{UseShared: true}).
					Return(&IssueResult{Email: "user@acme.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": true, "message": msgMagicLinkSent},
		},
		{
			name: "verify success",
			path: "/api/auth/verify/",
			body: `{"token":"abc"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().VerifyToken(gomock.Any(), "abc").Return(&VerifyResult{RedirectURL: "https://acme.hubsign.io"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"valid": true, "redirect_url": "https://acme.hubsign.io"},
		},
		{
			name: "verify expired reports generic message",
			path: "/api/auth/verify/",
			body: `{"token":"abc"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().VerifyToken(gomock.Any(), "abc").Return(nil, ErrTokenExpired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"valid": false, "message": msgInvalidToken},
		},
		{
			name: "verify used reports generic message",
			path: "/api/auth/verify/",
			body: `{"token":"abc"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().VerifyToken(gomock.Any(), "abc").Return(nil, ErrTokenAlreadyUsed)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"valid": false, "message": msgInvalidToken},
		},
		{
			name:         "verify missing token",
			path:         "/api/auth/verify/",
			body:         `{}`,
			setupMocks:   func(s *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"valid": false, "message": "token is required"},
		},
		{
			name: "verify store failure",
			path: "/api/auth/verify/",
			body: `{"token":"abc"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().VerifyToken(gomock.Any(), "abc").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"valid": false, "message": msgVerifyFailed},
		},
		{
			name: "signup created",
			path: "/api/auth/signup/",
			body: `{"email":"jane@example.com","name":"Jane","company":"Acme"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignUp(gomock.Any(), SignUp{Name: "Jane", Email: "jane@example.com", Company: "Acme"}).
					Return(&IssueResult{}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"success": true, "message": msgSignupCreated},
		},
		{
			name: "signup without name",
			path: "/api/auth/signup/",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, ErrNameRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"success": false, "message": msgNameRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			newTestRouter(mockSvc).ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(body) != len(tt.expectedBody) {
				t.Errorf("expected body %v, got %v", tt.expectedBody, body)
			}

			for k, v := range tt.expectedBody {
				if body[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, body[k])
				}
			}

			if strings.Contains(w.Body.String(), "secret") {
				t.Error("token value leaked in response")
			}
		})
	}
}
