package api

import (
	"encoding/json"
	"net/http"
)

// Response messages. Clients match on these, so they are part of the API.
const (
	msgJokeNotFound    = "Joke not found"
	msgTypeRequired    = "Joke type is required"
	msgNoJokesForType  = "No jokes found for this type"
	msgForbidden       = "Forbidden"
	msgJokeDeleted     = "Joke deleted"
	msgAllJokesDeleted = "All jokes deleted"
	msgInvalidForm     = "Invalid form body"
	msgInternalError   = "Internal server error"
)

// writeMessage writes a JSON {"message": ...} response with the given HTTP status code.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
