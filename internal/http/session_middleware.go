package http

import (
	"context"
	"net/http"
	"time"

	"tunereads/internal/auth"
	"tunereads/internal/httpx"
	"tunereads/internal/platform/spotify"

	"go.uber.org/zap"
)

const (
	sessionCookieName = "tunereads_session"
	sessionCookieTTL  = 30 * 24 * time.Hour
)

// TokenRefresher is the slice of the Spotify client the session layer needs.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (spotify.Token, error)
}

// SessionMiddleware authenticates requests with the session cookie. An
// expired Spotify access token is refreshed in-line and the cookie is
// re-issued, so a healthy refresh token keeps the browser logged in.
func SessionMiddleware(secret string, tokens TokenRefresher, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please connect your Spotify account")
				return
			}

			session, err := auth.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeAuthRequired, "Please reconnect your Spotify account")
				return
			}

			if session.Expired() {
				refreshed, err := tokens.Refresh(r.Context(), session.RefreshToken)
				if err != nil {
					log.Warn("spotify token refresh failed", zap.Error(err))
					httpx.WriteError(w, r, http.StatusUnauthorized, httpx.CodeTokenExpired, "Please reconnect your Spotify account")
					return
				}
				session = sessionFromToken(refreshed, session.RefreshToken)
				if signed, err := auth.GenerateSessionToken(secret, session, sessionCookieTTL); err == nil {
					setSessionCookie(w, signed)
				} else {
					log.Error("re-signing session cookie failed", zap.Error(err))
				}
			}

			ctx := httpx.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromToken folds a token grant into a session. Spotify often omits
// the refresh token on refresh responses; the old one stays valid then.
func sessionFromToken(tok spotify.Token, previousRefresh string) auth.Session {
	refresh := tok.RefreshToken
	if refresh == "" {
		refresh = previousRefresh
	}
	return auth.Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
	}
}

func setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
