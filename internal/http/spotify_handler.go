package http

import (
	"errors"
	"net/http"
	"strconv"

	"tunereads/internal/httpx"
	"tunereads/internal/platform/spotify"
	"tunereads/internal/profile"

	"go.uber.org/zap"
)

// SpotifyHandler serves the listening-data routes. Every route sits behind
// the session middleware, so a session is always on the context.
type SpotifyHandler struct {
	profiles *profile.Service
	log      *zap.Logger
}

func NewSpotifyHandler(profiles *profile.Service, log *zap.Logger) *SpotifyHandler {
	return &SpotifyHandler{profiles: profiles, log: log}
}

// ListeningProfile handles GET /api/spotify/listening-profile.
func (h *SpotifyHandler) ListeningProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := httpx.SessionFrom(r)
	if !ok {
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please connect your Spotify account")
		return
	}

	p, err := h.profiles.Profile(r.Context(), session.AccessToken, r.URL.Query().Get("timeRange"))
	if err != nil {
		h.writeSpotifyError(w, r, err, "Failed to create listening profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// TopArtists handles GET /api/spotify/top-artists.
func (h *SpotifyHandler) TopArtists(w http.ResponseWriter, r *http.Request) {
	session, ok := httpx.SessionFrom(r)
	if !ok {
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please connect your Spotify account")
		return
	}

	artists, err := h.profiles.TopArtists(r.Context(), session.AccessToken, r.URL.Query().Get("timeRange"), queryLimit(r))
	if err != nil {
		h.writeSpotifyError(w, r, err, "Failed to fetch top artists")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]spotify.Artist{"items": artists})
}

// TopTracks handles GET /api/spotify/top-tracks.
func (h *SpotifyHandler) TopTracks(w http.ResponseWriter, r *http.Request) {
	session, ok := httpx.SessionFrom(r)
	if !ok {
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please connect your Spotify account")
		return
	}

	tracks, err := h.profiles.TopTracks(r.Context(), session.AccessToken, r.URL.Query().Get("timeRange"), queryLimit(r))
	if err != nil {
		h.writeSpotifyError(w, r, err, "Failed to fetch top tracks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]spotify.Track{"items": tracks})
}

// RecentlyPlayed handles GET /api/spotify/recently-played.
func (h *SpotifyHandler) RecentlyPlayed(w http.ResponseWriter, r *http.Request) {
	session, ok := httpx.SessionFrom(r)
	if !ok {
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please connect your Spotify account")
		return
	}

	played, err := h.profiles.RecentlyPlayed(r.Context(), session.AccessToken, queryLimit(r))
	if err != nil {
		h.writeSpotifyError(w, r, err, "Failed to fetch recently played")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]spotify.PlayedTrack{"items": played})
}

func (h *SpotifyHandler) writeSpotifyError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, spotify.ErrUnauthorized) {
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeTokenExpired, "Please reconnect your Spotify account")
		return
	}
	h.log.Error("spotify request failed", zap.Error(err), zap.String("request_id", httpx.RequestIDFrom(r)))
	httpx.WriteError(w, r, http.StatusInternalServerError, httpx.CodeInternalError, message)
}

func queryLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}
