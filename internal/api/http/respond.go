package http

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Client-facing messages, kept identical to the original quiz API.
const (
	msgQuestionNotFound  = "Question not found"
	msgInvalidSubmission = "Invalid submission format. Expected an array of answers."
	msgNotFound          = "Not Found"
	msgMethodNotAllowed  = "Method Not Allowed"
)

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}
