package handler

import (
	"encoding/json"
	"net/http"

	"github.com/joestump/joe-jokes/internal/build"
	"github.com/joestump/joe-jokes/internal/store"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Jokes   int    `json:"jokes"`
	Version string `json:"version"`
}

// HealthHandler reports liveness and the current collection size.
type HealthHandler struct {
	jokes store.JokeStoreIface
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(jokes store.JokeStoreIface) *HealthHandler {
	return &HealthHandler{jokes: jokes}
}

// Check handles GET /healthz. It always returns 200 while the process is serving.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Jokes:   h.jokes.Count(r.Context()),
		Version: build.Version,
	})
}
