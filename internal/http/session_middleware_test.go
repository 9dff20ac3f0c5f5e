package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tunereads/internal/auth"
	"tunereads/internal/httpx"
	"tunereads/internal/platform/spotify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "session-middleware-test-secret"

type fakeRefresher struct {
	token      spotify.Token
	err        error
	gotRefresh string
	callCount  int
}

func (f *fakeRefresher) Refresh(_ context.Context, refreshToken string) (spotify.Token, error) {
	f.callCount++
	f.gotRefresh = refreshToken
	return f.token, f.err
}

func sessionEcho(t *testing.T, captured *auth.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := httpx.SessionFrom(r)
		require.True(t, ok)
		*captured = session
		w.WriteHeader(http.StatusNoContent)
	})
}

func signedCookie(t *testing.T, session auth.Session) *http.Cookie {
	t.Helper()
	signed, err := auth.GenerateSessionToken(testSecret, session, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookieName, Value: signed}
}

func TestSessionMiddlewareMissingCookie(t *testing.T) {
	refresher := &fakeRefresher{}
	mw := SessionMiddleware(testSecret, refresher, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/spotify/top-artists", nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), httpx.CodeAuthRequired)
	assert.Zero(t, refresher.callCount)
}

func TestSessionMiddlewareBadToken(t *testing.T) {
	mw := SessionMiddleware(testSecret, &fakeRefresher{}, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), httpx.CodeAuthRequired)
}

func TestSessionMiddlewareValidSession(t *testing.T) {
	refresher := &fakeRefresher{}
	mw := SessionMiddleware(testSecret, refresher, zap.NewNop())

	var got auth.Session
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(signedCookie(t, auth.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	mw(sessionEcho(t, &got)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Zero(t, refresher.callCount, "a live token must not be refreshed")
}

func TestSessionMiddlewareRefreshesExpiredToken(t *testing.T) {
	refresher := &fakeRefresher{token: spotify.Token{
		AccessToken: "access-2",
		ExpiresIn:   3600,
	}}
	mw := SessionMiddleware(testSecret, refresher, zap.NewNop())

	var got auth.Session
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(signedCookie(t, auth.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	mw(sessionEcho(t, &got)).ServeHTTP(w, r)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "refresh-1", refresher.gotRefresh)
	assert.Equal(t, "access-2", got.AccessToken)
	// Spotify omitted the refresh token, so the old one carries over.
	assert.Equal(t, "refresh-1", got.RefreshToken)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	reparsed, err := auth.ParseSessionToken(testSecret, cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "access-2", reparsed.AccessToken)
}

func TestSessionMiddlewareRefreshFailure(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("revoked")}
	mw := SessionMiddleware(testSecret, refresher, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(signedCookie(t, auth.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}))

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), httpx.CodeTokenExpired)
}
