package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tunereads/internal/chat"
	apphttp "tunereads/internal/http"
	"tunereads/internal/platform/googlebooks"
	"tunereads/internal/platform/openai"
	"tunereads/internal/platform/spotify"
	"tunereads/internal/profile"
	"tunereads/internal/recommend"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testRouter() *http.ServeMux {
	log := zap.NewNop()
	spotifyClient := spotify.NewClient("id", "secret", "http://localhost/api/auth/callback")
	openaiClient := openai.NewClient("sk-test", "gpt-4o-mini")
	booksClient := googlebooks.NewClient("", 100, 0)

	assembler := recommend.NewAssembler(
		recommend.NewFormulator(openaiClient, log),
		recommend.NewSource(booksClient, log),
		recommend.NewReasoner(openaiClient, log),
		log,
	)

	return newRouter(
		apphttp.NewAuthHandler(spotifyClient, "test-secret", "http://localhost:3000", log),
		apphttp.NewSpotifyHandler(profile.NewService(spotifyClient, log), log),
		apphttp.NewRecommendationsHandler(assembler),
		apphttp.NewChatHandler(chat.NewService(openaiClient, log)),
		apphttp.SessionMiddleware("test-secret", spotifyClient, log),
	)
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSpotifyRoutesRequireSession(t *testing.T) {
	router := testRouter()

	paths := []string{
		"/api/spotify/listening-profile",
		"/api/spotify/top-artists",
		"/api/spotify/top-tracks",
		"/api/spotify/recently-played",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, w.Body.String(), "AUTH_REQUIRED", path)
	}
}

func TestRecommendationsRejectsGet(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
