package respond

import (
	"encoding/json"
	"net/http"

	"github.com/hongminglow/puzzle-be/internal/logging"
)

// MessageBody is the body of every error and informational response.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes payload as the response body with the given status. Encode
// failures go to the request's logger.
func JSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(r.Context()).Error(r.Context(), "respond: encode payload failed", "error", err)
	}
}

// Error writes {"message": message} with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, MessageBody{Message: message})
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.FromContext(r.Context()).Error(r.Context(), "respond: write body failed", "error", err)
	}
}
