package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]bool{
	"timestamp": true,
	"requestId": true,
	"createdAt": true,
}

func prepareRequest(
	method, path string,
	body io.Reader,
	headers map[string]string,
	cookies []http.Cookie,
) (*http.Request, error) {

	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)

	return n
}

func executeAgainst(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	t.Helper()

	var got, want map[string]any

	err := json.NewDecoder(body).Decode(&got)
	require.NoError(t, err)

	err = json.Unmarshal([]byte(expectedResponse), &want)
	require.NoError(t, err)

	ignoreVolatile := cmpopts.IgnoreMapEntries(func(k string, v any) bool {
		return keysToIgnore[k]
	})

	if diff := cmp.Diff(want, got, ignoreVolatile); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}
