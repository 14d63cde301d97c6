package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/joe-jokes/internal/logging"
	"github.com/joestump/joe-jokes/internal/store"
	"github.com/joestump/joe-jokes/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *store.JokeStore) {
	t.Helper()
	js := testutil.NewJokeStore(t)
	return NewRouter(Deps{
		Logger:    logging.Nop(),
		JokeStore: js,
		MasterKey: "s3cret",
	}), js
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, "GET", "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Jokes)
	assert.NotEmpty(t, resp.Version)
}

func TestRouter_MountsJokesAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, "GET", "/jokes/1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"jokeText":"A"`)
	assert.NotEmpty(t, rec.Header().Get(logging.RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	r, js := newTestRouter(t)

	rec := serve(r, "DELETE", "/jokes?key=s3cret")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, js.Count(t.Context()))

	rec = serve(r, "GET", "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `joejokes_mutations_total{op="delete_all",outcome="ok"}`)
	assert.Contains(t, body, "joejokes_jokes_total 0")
	assert.Contains(t, body, `joejokes_request_duration_seconds_count{route="/jokes",status="200"}`)
}

func TestRouter_SwaggerUI(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := serve(r, "GET", "/docs/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"/jokes/{id}"`), rec.Body.String())
}
