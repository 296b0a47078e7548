// Package middleware holds the HTTP middleware mounted by the REST router.
// Rejections are written in the same {"error": "..."} envelope the handlers use.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler. It is assignable to chi's middleware type.
type Middleware func(http.Handler) http.Handler

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
