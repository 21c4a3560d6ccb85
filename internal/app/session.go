package app

import (
	"log/slog"
	"net/http"
)

type sessionKey string

const SessionKeyUserId = sessionKey("userID")

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const loggerContextKey = contextKey("logger")

// contextGetUserId retrieves the authenticated user's id placed into the
// request context by requireAuthentication. Calling it from a handler that is
// not behind that middleware is a programming error, so it panics.
func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id in request context")
	}

	return userId
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
