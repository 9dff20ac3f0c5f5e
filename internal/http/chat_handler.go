package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tunereads/internal/chat"
	"tunereads/internal/httpx"
	"tunereads/internal/profile"
)

type ChatHandler struct {
	service *chat.Service
}

func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Message string           `json:"message"`
	Profile *profile.Profile `json:"userProfile"`
}

type chatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		httpx.WriteError(w, r, http.StatusMethodNotAllowed, httpx.CodeBadRequest, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "invalid JSON body")
		return
	}

	reply, err := h.service.Reply(r.Context(), req.Message, req.Profile)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Message is required")
			return
		}
		httpx.WriteError(w, r, http.StatusInternalServerError, httpx.CodeInternalError,
			"Sorry, I'm having trouble connecting to the recommendation engine. Please try again!")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		Timestamp: time.Now().UTC(),
	})
}
