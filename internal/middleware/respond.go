package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's {"error": msg} body. Middleware answers in
// the same shape as the handlers so clients need one error decoder.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
