package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
}

// NewClient builds a volumes-search client. apiKey may be empty; the public
// endpoint works unauthenticated at a lower quota.
func NewClient(apiKey string, rps int, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:    "https://www.googleapis.com/books/v1",
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// VolumesResponse matches the volumes list endpoint.
type VolumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

type Volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title               string   `json:"title"`
		Authors             []string `json:"authors"`
		Description         string   `json:"description"`
		Categories          []string `json:"categories"`
		AverageRating       float64  `json:"averageRating"`
		Language            string   `json:"language"`
		ImageLinks          struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
		IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	} `json:"volumeInfo"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"` // ISBN_10, ISBN_13, OTHER
	Identifier string `json:"identifier"`
}

// Volumes runs one relevance-ordered, English-only, print-books-only search.
func (c *Client) Volumes(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("maxResults", fmt.Sprintf("%d", maxResults))
	q.Set("orderBy", "relevance")
	q.Set("langRestrict", "en")
	q.Set("printType", "books")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	var res VolumesResponse
	if err := c.get(ctx, c.baseURL+"/volumes?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
