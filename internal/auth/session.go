package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is what survives between requests: the Spotify grant, wrapped in
// a signed cookie. There is no user record behind it.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the Spotify access token needs a refresh. A small
// skew keeps us from handing out a token that dies mid-request.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt.Add(-30 * time.Second))
}

type SessionClaims struct {
	AccessToken  string `json:"sat"` // spotify access token
	RefreshToken string `json:"srt"` // spotify refresh token
	TokenExpiry  int64  `json:"ste"` // spotify token expiry, unix seconds
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session cookie value. ttl bounds the cookie
// itself, independent of the embedded Spotify token expiry.
func GenerateSessionToken(secret string, s Session, ttl time.Duration) (string, error) {
	c := SessionClaims{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenExpiry:  s.ExpiresAt.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func ParseSessionToken(secret, tokenStr string) (Session, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := t.Claims.(*SessionClaims)
	if !ok || !t.Valid {
		return Session{}, jwt.ErrTokenInvalidClaims
	}
	return Session{
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		ExpiresAt:    time.Unix(claims.TokenExpiry, 0),
	}, nil
}
