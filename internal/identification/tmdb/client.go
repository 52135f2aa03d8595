package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Movie carries the TMDB movie fields used for original-language resolution.
type Movie struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	ReleaseDate      string `json:"release_date"`
	OriginalLanguage string `json:"original_language"`
}

// FindResponse models the TMDB external-id lookup payload.
type FindResponse struct {
	MovieResults []Movie `json:"movie_results"`
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ValidateKey verifies the configured API key against the TMDB configuration
// endpoint. A 401 means the key is invalid; any other non-200 is a transport
// problem.
func (c *Client) ValidateKey(ctx context.Context) error {
	status, err := c.get(ctx, "/configuration", nil, nil)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return errors.New("tmdb api key rejected")
	}
	if status != http.StatusOK {
		return fmt.Errorf("tmdb configuration returned %d", status)
	}
	return nil
}

// FindByIMDbID resolves an IMDb identifier (ttNNNNNNN) to the TMDB movie it
// belongs to. Returns an error when TMDB knows no movie for the id.
func (c *Client) FindByIMDbID(ctx context.Context, imdbID string) (*Movie, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id must not be empty")
	}

	var payload FindResponse
	params := url.Values{}
	params.Set("external_source", "imdb_id")
	status, err := c.get(ctx, "/find/"+url.PathEscape(imdbID), params, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("tmdb find returned %d", status)
	}
	if len(payload.MovieResults) == 0 {
		return nil, fmt.Errorf("tmdb find: no movie results for %s", imdbID)
	}
	return &payload.MovieResults[0], nil
}

// GetMovieDetails fetches movie details by TMDB ID.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}

	var payload Movie
	status, err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("tmdb movie details returned %d", status)
	}
	return &payload, nil
}

// get performs an authenticated GET against the TMDB API and decodes a 200
// response into out when out is non-nil. The HTTP status is always returned
// so callers can distinguish auth failures from missing resources.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (int, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return 0, fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return 0, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode tmdb response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
