package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"top-movies/pkg/circuitbreaker"
	"top-movies/pkg/logger"
	"top-movies/pkg/models"
)

const (
	SearchURL = "https://api.themoviedb.org/3/search/movie"
	InfoURL   = "https://api.themoviedb.org/3/movie"

	// ImageBaseURL prefixes a candidate's poster path to form a full image URL.
	ImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// ErrNotFound means the id matched neither a live provider response nor the
// fallback catalog.
var ErrNotFound = errors.New("tmdb: movie not found")

// Client looks up movie metadata on TMDB. Without an API key, or whenever a
// live call fails, it degrades to the bundled sample catalog instead of
// surfacing the error. The live path runs behind a circuit breaker so a dead
// provider is skipped entirely after repeated failures.
type Client struct {
	apiKey     string
	searchURL  string
	infoURL    string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

func New(apiKey string) *Client {
	return NewWithURLs(apiKey, SearchURL, InfoURL)
}

func NewWithURLs(apiKey, searchURL, infoURL string) *Client {
	return &Client{
		apiKey:    apiKey,
		searchURL: searchURL,
		infoURL:   infoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		breaker: circuitbreaker.New(3, 30*time.Second),
	}
}

// Search returns candidate matches for a free-text title. The second return
// value reports whether the result came from the fallback catalog.
func (c *Client) Search(ctx context.Context, query string) ([]models.Candidate, bool) {
	if c.apiKey == "" {
		return searchCatalog(query), true
	}

	var results []models.Candidate
	err := c.breaker.Execute(func() error {
		reqURL := fmt.Sprintf("%s?api_key=%s&query=%s", c.searchURL, c.apiKey, url.QueryEscape(query))
		var response struct {
			Results []models.Candidate `json:"results"`
		}
		if err := c.get(ctx, reqURL, &response); err != nil {
			return err
		}
		results = response.Results
		return nil
	})
	if err != nil {
		logger.Get().Warnf("TMDB search failed, using fallback catalog: %v", err)
		return searchCatalog(query), true
	}
	return results, false
}

// Details resolves a provider id to full movie details, falling back to the
// catalog when the live call fails.
func (c *Client) Details(ctx context.Context, providerID int) (*models.Candidate, error) {
	if c.apiKey != "" {
		var candidate models.Candidate
		err := c.breaker.Execute(func() error {
			reqURL := fmt.Sprintf("%s/%d?api_key=%s&language=en-US", c.infoURL, providerID, c.apiKey)
			return c.get(ctx, reqURL, &candidate)
		})
		if err == nil {
			return &candidate, nil
		}
		logger.Get().Warnf("TMDB details lookup failed, using fallback catalog: %v", err)
	}

	for _, candidate := range fallbackCatalog {
		if candidate.ID == providerID {
			return &candidate, nil
		}
	}
	return nil, ErrNotFound
}

func (c *Client) get(ctx context.Context, reqURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
