package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tunereads/internal/auth"
	"tunereads/internal/httpx"
	"tunereads/internal/platform/spotify"
	"tunereads/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeListeningSource struct {
	artists []spotify.Artist
	tracks  []spotify.Track
	played  []spotify.PlayedTrack
	err     error
}

func (f *fakeListeningSource) TopArtists(context.Context, string, string, int) ([]spotify.Artist, error) {
	return f.artists, f.err
}

func (f *fakeListeningSource) TopTracks(context.Context, string, string, int) ([]spotify.Track, error) {
	return f.tracks, f.err
}

func (f *fakeListeningSource) RecentlyPlayed(context.Context, string, int) ([]spotify.PlayedTrack, error) {
	return f.played, f.err
}

func newSpotifyHandler(source *fakeListeningSource) *SpotifyHandler {
	return NewSpotifyHandler(profile.NewService(source, zap.NewNop()), zap.NewNop())
}

func authed(r *http.Request) *http.Request {
	ctx := httpx.ContextWithSession(r.Context(), auth.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})
	return r.WithContext(ctx)
}

func TestTopArtistsRequiresSession(t *testing.T) {
	handler := newSpotifyHandler(&fakeListeningSource{})

	w := httptest.NewRecorder()
	handler.TopArtists(w, httptest.NewRequest(http.MethodGet, "/api/spotify/top-artists", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), httpx.CodeAuthRequired)
}

func TestTopArtistsSuccess(t *testing.T) {
	handler := newSpotifyHandler(&fakeListeningSource{artists: []spotify.Artist{
		{ID: "a1", Name: "Mitski", Genres: []string{"indie rock"}},
	}})

	w := httptest.NewRecorder()
	handler.TopArtists(w, authed(httptest.NewRequest(http.MethodGet, "/api/spotify/top-artists?limit=5", nil)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []spotify.Artist `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Mitski", resp.Items[0].Name)
}

func TestTopTracksExpiredSpotifyToken(t *testing.T) {
	handler := newSpotifyHandler(&fakeListeningSource{err: spotify.ErrUnauthorized})

	w := httptest.NewRecorder()
	handler.TopTracks(w, authed(httptest.NewRequest(http.MethodGet, "/api/spotify/top-tracks", nil)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), httpx.CodeTokenExpired)
}

func TestRecentlyPlayedSuccess(t *testing.T) {
	handler := newSpotifyHandler(&fakeListeningSource{played: []spotify.PlayedTrack{
		{Track: spotify.Track{ID: "t1", Name: "Washing Machine Heart"}, PlayedAt: time.Now()},
	}})

	w := httptest.NewRecorder()
	handler.RecentlyPlayed(w, authed(httptest.NewRequest(http.MethodGet, "/api/spotify/recently-played", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Washing Machine Heart")
}

func TestListeningProfileSuccess(t *testing.T) {
	handler := newSpotifyHandler(&fakeListeningSource{
		artists: []spotify.Artist{{ID: "a1", Name: "Mitski"}},
	})

	w := httptest.NewRecorder()
	handler.ListeningProfile(w, authed(httptest.NewRequest(http.MethodGet,
		"/api/spotify/listening-profile?timeRange=short_term", nil)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp profile.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "short_term", resp.TimeRange)
	require.Len(t, resp.TopArtists, 1)
}
