package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders a classified error. Nothing else is ever written
// on the failure path: no stack traces, no provider text beyond what
// the classifier already sanitized.
func writeError(w http.ResponseWriter, gerr *gwerr.Error) {
	writeJSON(w, gerr.Status, errorResponse{
		Error:   string(gerr.Kind),
		Message: gerr.Message,
	})
}
