package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-account-verify/internal/domain"
)

// ErrorEnvelope is the transport-level error wrapper for malformed
// requests that never reach a service.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Error: msg})
}

// writeOutcome serializes a service Outcome. The protocol reports every
// outcome over 200 with the status tag in the body, as the original wire
// format does.
func writeOutcome(w http.ResponseWriter, out domain.Outcome) {
	writeJSON(w, http.StatusOK, out)
}
