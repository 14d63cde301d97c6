package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/joestump/joe-jokes/internal/metrics"
	"github.com/joestump/joe-jokes/internal/store"
)

// jokesAPIHandler provides REST handlers for the joke collection.
type jokesAPIHandler struct {
	jokes store.JokeStoreIface
	guard KeyGuard
}

// registerJokeRoutes registers the joke routes on r.
func registerJokeRoutes(r chi.Router, jokes store.JokeStoreIface, guard KeyGuard) {
	h := &jokesAPIHandler{jokes: jokes, guard: guard}
	metrics.JokesTotal.Set(float64(jokes.Count(context.Background())))

	r.Get("/jokes/random", h.Random)
	r.Get("/jokes/{id}", h.Get)
	r.Get("/jokes", h.ListByType)
	r.Post("/jokes", h.Create)
	r.Put("/jokes/{id}", h.Update)
	r.Patch("/jokes/{id}", h.Patch)
	r.Delete("/jokes/{id}", h.Delete)
	r.Delete("/jokes", h.DeleteAll)
}

// Random returns a random joke.
// GET /jokes/random
//
// @Summary      Get a random joke
// @Description  Returns a uniformly random joke. 404 when the collection is empty.
// @Tags         Jokes
// @Produce      json
// @Success      200  {object}  JokeResponse
// @Failure      404  {object}  MessageResponse
// @Router       /jokes/random [get]
func (h *jokesAPIHandler) Random(w http.ResponseWriter, r *http.Request) {
	j, err := h.jokes.Random(r.Context())
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toJokeResponse(j))
}

// Get returns a single joke by ID.
// GET /jokes/{id}
//
// @Summary      Get a joke
// @Description  Returns the first joke with the given id.
// @Tags         Jokes
// @Produce      json
// @Param        id   path      int  true  "Joke ID"
// @Success      200  {object}  JokeResponse
// @Failure      404  {object}  MessageResponse
// @Router       /jokes/{id} [get]
func (h *jokesAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toJokeResponse(j))
}

// ListByType returns every joke of the requested type.
// GET /jokes?type=...
//
// @Summary      List jokes by type
// @Description  Case-insensitive match on jokeType, in insertion order. An empty match is a 404, not an empty list.
// @Tags         Jokes
// @Produce      json
// @Param        type  query     string  true  "Joke type"
// @Success      200   {array}   JokeResponse
// @Failure      400   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse
// @Router       /jokes [get]
func (h *jokesAPIHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	jokeType := r.URL.Query().Get("type")
	if jokeType == "" {
		writeMessage(w, http.StatusBadRequest, msgTypeRequired)
		return
	}

	jokes, err := h.jokes.ListByType(r.Context(), jokeType)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if len(jokes) == 0 {
		writeMessage(w, http.StatusNotFound, msgNoJokesForType)
		return
	}

	writeJSON(w, http.StatusOK, toJokeResponses(jokes))
}

// Create appends a new joke.
// POST /jokes
//
// @Summary      Create a joke
// @Description  Appends a joke with id = current count + 1. Fields are not validated.
// @Tags         Jokes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        text  formData  string  false  "Joke text"
// @Param        type  formData  string  false  "Joke type"
// @Success      201   {object}  JokeResponse
// @Failure      403   {object}  MessageResponse
// @Security     MasterKey
// @Router       /jokes [post]
func (h *jokesAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidForm)
		return
	}
	text, jokeType := r.PostForm.Get("text"), r.PostForm.Get("type")

	if !h.authorize(w, r, "create") {
		return
	}

	j, err := h.jokes.Create(r.Context(), text, jokeType)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.recordMutation(r.Context(), "create", metrics.OutcomeOK)
	writeJSON(w, http.StatusCreated, toJokeResponse(j))
}

// Update replaces both fields of a joke. Absent form values clear the field.
// PUT /jokes/{id}
//
// @Summary      Replace a joke
// @Description  Overwrites jokeText and jokeType unconditionally; absent values become empty.
// @Tags         Jokes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id    path      int     true   "Joke ID"
// @Param        text  formData  string  false  "Joke text"
// @Param        type  formData  string  false  "Joke type"
// @Success      200   {object}  JokeResponse
// @Failure      403   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse
// @Security     MasterKey
// @Router       /jokes/{id} [put]
func (h *jokesAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		h.recordMutation(r.Context(), "update", metrics.OutcomeNotFound)
		return
	}
	if !h.authorize(w, r, "update") {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	updated, err := h.jokes.Update(r.Context(), j.ID, r.PostForm.Get("text"), r.PostForm.Get("type"))
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.recordMutation(r.Context(), "update", metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, toJokeResponse(updated))
}

// Patch overwrites only the fields present and non-empty in the form body.
// An empty value never clears a field.
// PATCH /jokes/{id}
//
// @Summary      Update a joke
// @Description  Overwrites a field only when its form value is present and non-empty.
// @Tags         Jokes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id    path      int     true   "Joke ID"
// @Param        text  formData  string  false  "Joke text"
// @Param        type  formData  string  false  "Joke type"
// @Success      200   {object}  JokeResponse
// @Failure      403   {object}  MessageResponse
// @Failure      404   {object}  MessageResponse
// @Security     MasterKey
// @Router       /jokes/{id} [patch]
func (h *jokesAPIHandler) Patch(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		h.recordMutation(r.Context(), "patch", metrics.OutcomeNotFound)
		return
	}
	if !h.authorize(w, r, "patch") {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	patch := store.JokePatch{
		Text: presentNonEmpty(r, "text"),
		Type: presentNonEmpty(r, "type"),
	}
	updated, err := h.jokes.Patch(r.Context(), j.ID, patch)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.recordMutation(r.Context(), "patch", metrics.OutcomeOK)
	writeJSON(w, http.StatusOK, toJokeResponse(updated))
}

// Delete removes a single joke.
// DELETE /jokes/{id}
//
// @Summary      Delete a joke
// @Description  Removes the first joke with the given id.
// @Tags         Jokes
// @Produce      json
// @Param        id   path      int  true  "Joke ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Security     MasterKey
// @Router       /jokes/{id} [delete]
func (h *jokesAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	j, ok := h.lookup(w, r)
	if !ok {
		h.recordMutation(r.Context(), "delete", metrics.OutcomeNotFound)
		return
	}
	if !h.authorize(w, r, "delete") {
		return
	}

	if err := h.jokes.Delete(r.Context(), j.ID); err != nil {
		h.storeError(w, r, err)
		return
	}
	h.recordMutation(r.Context(), "delete", metrics.OutcomeOK)
	writeMessage(w, http.StatusOK, msgJokeDeleted)
}

// DeleteAll empties the collection.
// DELETE /jokes
//
// @Summary      Delete all jokes
// @Description  Empties the collection. Only the master key is checked.
// @Tags         Jokes
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Security     MasterKey
// @Router       /jokes [delete]
func (h *jokesAPIHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, "delete_all") {
		return
	}

	if err := h.jokes.DeleteAll(r.Context()); err != nil {
		h.storeError(w, r, err)
		return
	}
	h.recordMutation(r.Context(), "delete_all", metrics.OutcomeOK)
	writeMessage(w, http.StatusOK, msgAllJokesDeleted)
}

// lookup resolves the {id} path parameter. It writes a 404 and returns false when the
// id does not parse or matches no joke.
func (h *jokesAPIHandler) lookup(w http.ResponseWriter, r *http.Request) (*store.Joke, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, msgJokeNotFound)
		return nil, false
	}

	j, err := h.jokes.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err)
		return nil, false
	}
	return j, true
}

// authorize writes a 403 and returns false when r does not carry the master key.
func (h *jokesAPIHandler) authorize(w http.ResponseWriter, r *http.Request, op string) bool {
	if h.guard.Allowed(r) {
		return true
	}
	zerolog.Ctx(r.Context()).Warn().Str("op", op).Msg("rejected mutation: bad master key")
	metrics.MutationsTotal.WithLabelValues(op, metrics.OutcomeForbidden).Inc()
	writeMessage(w, http.StatusForbidden, msgForbidden)
	return false
}

// storeError maps store errors onto HTTP responses.
func (h *jokesAPIHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgJokeNotFound)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("joke store failure")
	writeMessage(w, http.StatusInternalServerError, msgInternalError)
}

func (h *jokesAPIHandler) recordMutation(ctx context.Context, op, outcome string) {
	metrics.MutationsTotal.WithLabelValues(op, outcome).Inc()
	if outcome == metrics.OutcomeOK {
		metrics.JokesTotal.Set(float64(h.jokes.Count(ctx)))
	}
}

// presentNonEmpty returns the form value for key when it is present and non-empty,
// and nil otherwise.
func presentNonEmpty(r *http.Request, key string) *string {
	v := r.PostForm.Get(key)
	if v == "" {
		return nil
	}
	return &v
}
