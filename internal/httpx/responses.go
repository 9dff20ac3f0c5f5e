package httpx

import (
	"encoding/json"
	"net/http"
)

// Error codes shared with the frontend.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeAuthRequired  = "AUTH_REQUIRED"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	CodeInternalError = "INTERNAL_ERROR"
)

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

// WriteJSON writes v as the whole response body.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the shared error shape. message is what the client may
// show to a user; never put internal error text in it.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     message,
		Code:      code,
		RequestID: RequestIDFrom(r),
	})
}
