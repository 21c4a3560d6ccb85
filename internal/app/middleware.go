package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestLogger stores a request-scoped logger carrying the request id, so
// handlers and the goroutines they spawn log with correlation context.
func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// requireAdmin must be chained after requireAuthentication: an unauthenticated
// caller gets 401 there, an authenticated non-admin gets 403 here.
func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.contextGetUserId(r)

		user, err := app.userRepo.GetById(r.Context(), userId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unauthorizedAccessResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if !user.IsAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
