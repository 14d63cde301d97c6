package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joestump/joe-jokes/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	JokeStore store.JokeStoreIface
	MasterKey string
}

// NewAPIRouter creates a chi router serving the /jokes resource.
// Every route returns application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	registerJokeRoutes(r, deps.JokeStore, NewKeyGuard(deps.MasterKey))

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
