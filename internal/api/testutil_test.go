package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/joestump/joe-jokes/internal/api"
	"github.com/joestump/joe-jokes/internal/store"
	"github.com/joestump/joe-jokes/internal/testutil"
)

const testKey = "s3cret"

// testEnv holds the store and router needed for API tests.
type testEnv struct {
	Router    http.Handler
	JokeStore *store.JokeStore
}

// newTestEnv wires the API router over a fresh store seeded with seed.
func newTestEnv(t *testing.T, seed ...store.Joke) *testEnv {
	t.Helper()
	js := store.NewJokeStore(seed)
	router := api.NewAPIRouter(api.Deps{
		JokeStore: js,
		MasterKey: testKey,
	})
	return &testEnv{Router: router, JokeStore: js}
}

// scenarioSeed is the two-record collection used throughout the API tests.
func scenarioSeed() []store.Joke {
	return testutil.ScenarioSeed()
}

// do sends a request with an optional form body and returns the recorder.
func (env *testEnv) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v; body: %s", err, rec.Body.String())
	}
}

// withKey appends the given key to path as a query parameter.
func withKey(path, key string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "key=" + url.QueryEscape(key)
}
