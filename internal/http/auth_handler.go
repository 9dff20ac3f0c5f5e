package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"tunereads/internal/auth"
	"tunereads/internal/httpx"
	"tunereads/internal/platform/spotify"

	"go.uber.org/zap"
)

const stateCookieName = "tunereads_oauth_state"

// Authorizer is the slice of the Spotify client the login flow needs.
type Authorizer interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (spotify.Token, error)
}

type AuthHandler struct {
	spotify     Authorizer
	jwtSecret   string
	frontendURL string
	log         *zap.Logger
}

func NewAuthHandler(spotify Authorizer, jwtSecret, frontendURL string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		spotify:     spotify,
		jwtSecret:   jwtSecret,
		frontendURL: frontendURL,
		log:         log,
	}
}

// Login starts the authorization-code flow.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		httpx.WriteError(w, r, http.StatusInternalServerError, httpx.CodeInternalError, "could not start login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.spotify.AuthorizeURL(state), http.StatusFound)
}

// Callback finishes the flow: verifies state, trades the code for tokens
// and drops a signed session cookie.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if authErr := query.Get("error"); authErr != "" {
		h.log.Warn("spotify authorization denied", zap.String("error", authErr))
		httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Spotify authorization was denied")
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
		httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "state mismatch")
		return
	}

	code := query.Get("code")
	if code == "" {
		httpx.WriteError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "missing authorization code")
		return
	}

	tok, err := h.spotify.ExchangeCode(r.Context(), code)
	if err != nil {
		h.log.Error("code exchange failed", zap.Error(err))
		httpx.WriteError(w, r, http.StatusBadGateway, httpx.CodeInternalError, "could not complete Spotify login")
		return
	}

	session := sessionFromToken(tok, "")
	signed, err := auth.GenerateSessionToken(h.jwtSecret, session, sessionCookieTTL)
	if err != nil {
		h.log.Error("signing session cookie failed", zap.Error(err))
		httpx.WriteError(w, r, http.StatusInternalServerError, httpx.CodeInternalError, "could not complete Spotify login")
		return
	}

	setSessionCookie(w, signed)
	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
