package api

import "github.com/joestump/joe-jokes/internal/store"

// JokeResponse is the JSON representation of a single joke.
type JokeResponse struct {
	ID       int    `json:"id" example:"1"`
	JokeText string `json:"jokeText" example:"Why was six afraid of seven? Because seven eight nine."`
	JokeType string `json:"jokeType" example:"Math"`
}

// MessageResponse is the body of every error and of the delete endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Joke not found"`
}

func toJokeResponse(j *store.Joke) JokeResponse {
	return JokeResponse{ID: j.ID, JokeText: j.JokeText, JokeType: j.JokeType}
}

func toJokeResponses(jokes []*store.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, toJokeResponse(j))
	}
	return out
}
