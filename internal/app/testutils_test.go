package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/planetarium-reservation-system/api"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/mocks"
	"github.com/metinatakli/planetarium-reservation-system/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		userRepo:  &mocks.MockUserRepo{},
		tokenRepo: &mocks.MockTokenRepo{},
		mailer:    mailer.NewMockMailer(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withUrlParam attaches a chi route parameter to the request, standing in for
// the router in direct handler tests.
func withUrlParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withUser places a user id into the request context the way
// requireAuthentication does.
func withUser(r *http.Request, userId int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), SessionKeyUserId, userId))
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
