package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tunereads/internal/entity"
	"tunereads/internal/httpx"
)

// Assembler is what the handler needs from the recommendation pipeline.
type Assembler interface {
	Assemble(ctx context.Context, artist entity.Artist) []entity.BookRecommendation
}

type RecommendationsHandler struct {
	assembler Assembler
}

func NewRecommendationsHandler(assembler Assembler) *RecommendationsHandler {
	return &RecommendationsHandler{assembler: assembler}
}

type recommendationsRequest struct {
	Artist *entity.Artist `json:"artist"`
}

type recommendationsResponse struct {
	Artist          string                      `json:"artist"`
	Genres          []string                    `json:"genres"`
	Recommendations []entity.BookRecommendation `json:"recommendations"`
	GeneratedAt     time.Time                   `json:"generated_at"`
}

// Recommend handles POST /api/recommendations.
func (h *RecommendationsHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		httpx.WriteError(w, r, http.StatusMethodNotAllowed, httpx.CodeBadRequest, "method not allowed")
		return
	}

	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "invalid JSON body")
		return
	}
	if req.Artist == nil || strings.TrimSpace(req.Artist.Name) == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Artist data is required")
		return
	}

	recommendations := h.assembler.Assemble(r.Context(), *req.Artist)

	genres := req.Artist.Genres
	if genres == nil {
		genres = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, recommendationsResponse{
		Artist:          req.Artist.Name,
		Genres:          genres,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	})
}
