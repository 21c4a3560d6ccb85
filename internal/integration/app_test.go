package integration_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/planetarium-reservation-system/internal/app"
	"github.com/metinatakli/planetarium-reservation-system/internal/mailer"
	"github.com/metinatakli/planetarium-reservation-system/internal/repository"
	"github.com/metinatakli/planetarium-reservation-system/internal/validator"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	mockMailer := mailer.NewMockMailer()

	testApp := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator.NewValidator(),
		mockMailer,
		app.NewSessionManager(redisClient),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresTokenRepository(db),
		repository.NewPostgresThemeRepository(db),
		repository.NewPostgresShowRepository(db),
		repository.NewPostgresDomeRepository(db),
		repository.NewPostgresSessionRepository(db),
		repository.NewPostgresReservationRepository(db),
	)

	return &TestApp{App: testApp, DB: db, Mailer: mockMailer}, nil
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	stmts, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(stmts))
	require.NoError(t, err)
}

// registerUser creates the user through the public registration endpoint so that
// the stored password hash matches what the login flow expects. A 400 response
// means the user already exists from an earlier test, which is fine.
func (a *TestApp) registerUser(t testing.TB, email string) {
	t.Helper()

	body := fmt.Sprintf(
		`{"firstName": %q, "lastName": %q, "email": %q, "password": %q}`,
		TestUserFirstName, TestUserLastName, email, TestUserPassword,
	)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted && rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d while registering %s", rec.Code, email)
	}
}

func (a *TestApp) loginAs(t testing.TB, email, password string) []http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	result := make([]http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		result = append(result, *c)
	}

	return result
}

func (a *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	t.Helper()

	a.registerUser(t, TestUserEmail)

	return a.loginAs(t, TestUserEmail, TestUserPassword)
}

func (a *TestApp) adminUserCookies(t testing.TB) []http.Cookie {
	t.Helper()

	a.registerUser(t, TestAdminEmail)

	_, err := a.DB.Exec(context.Background(), "UPDATE users SET is_admin = true WHERE email = $1", TestAdminEmail)
	require.NoError(t, err)

	return a.loginAs(t, TestAdminEmail, TestUserPassword)
}
