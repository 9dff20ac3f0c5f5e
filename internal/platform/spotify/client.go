package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnauthorized means the access token is missing, expired, or revoked.
// The session layer reacts by refreshing or forcing a re-login.
var ErrUnauthorized = errors.New("spotify: unauthorized")

const (
	// Scopes needed to read listening history.
	oauthScopes = "user-read-email user-top-read user-read-recently-played"
)

type Client struct {
	httpClient   *http.Client
	baseURL      string
	accountsURL  string
	clientID     string
	clientSecret string
	redirectURL  string
}

func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      "https://api.spotify.com/v1",
		accountsURL:  "https://accounts.spotify.com",
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
	}
}

func (c *Client) WithBaseURLs(apiURL, accountsURL string) *Client {
	c.baseURL = apiURL
	c.accountsURL = accountsURL
	return c
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Images     []Image  `json:"images"`
	Popularity int      `json:"popularity"`
}

type TrackArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Track struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Artists []TrackArtist `json:"artists"`
	Album   struct {
		Name   string  `json:"name"`
		Images []Image `json:"images"`
	} `json:"album"`
	DurationMS int `json:"duration_ms"`
	Popularity int `json:"popularity"`
}

type PlayedTrack struct {
	Track    Track     `json:"track"`
	PlayedAt time.Time `json:"played_at"`
}

// Token is the accounts-service grant. RefreshToken may be empty on a
// refresh response, in which case the previous one stays valid.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

// AuthorizeURL is where the browser goes to grant access.
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.clientID)
	q.Set("scope", oauthScopes)
	q.Set("redirect_uri", c.redirectURL)
	q.Set("state", state)
	return c.accountsURL + "/authorize?" + q.Encode()
}

// ExchangeCode trades an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURL)
	return c.tokenRequest(ctx, form)
}

// Refresh trades a refresh token for a fresh access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.tokenRequest(ctx, form)
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("token request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return Token{}, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return Token{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tok Token
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return Token{}, fmt.Errorf("token decode error: %w", err)
	}
	return tok, nil
}

// TopArtists returns the user's top artists for the given time range
// (short_term, medium_term or long_term).
func (c *Client) TopArtists(ctx context.Context, accessToken, timeRange string, limit int) ([]Artist, error) {
	q := url.Values{}
	q.Set("time_range", timeRange)
	q.Set("limit", strconv.Itoa(limit))

	var page struct {
		Items []Artist `json:"items"`
	}
	if err := c.get(ctx, accessToken, "/me/top/artists?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) TopTracks(ctx context.Context, accessToken, timeRange string, limit int) ([]Track, error) {
	q := url.Values{}
	q.Set("time_range", timeRange)
	q.Set("limit", strconv.Itoa(limit))

	var page struct {
		Items []Track `json:"items"`
	}
	if err := c.get(ctx, accessToken, "/me/top/tracks?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) RecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]PlayedTrack, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var page struct {
		Items []PlayedTrack `json:"items"`
	}
	if err := c.get(ctx, accessToken, "/me/player/recently-played?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) get(ctx context.Context, accessToken, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling spotify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify returned status %d for %s", resp.StatusCode, endpoint)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
