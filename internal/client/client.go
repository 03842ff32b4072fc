// Package client talks to a running movieshelf server over its JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"movieshelf/internal/api"
	"movieshelf/internal/config"
	"movieshelf/internal/movies"
)

// ErrUnavailable marks transport failures reaching the server.
var ErrUnavailable = errors.New("movieshelf server unavailable")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// Is maps response statuses onto the store's sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case movies.ErrValidation:
		return e.Status == http.StatusUnprocessableEntity
	case movies.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Client is an HTTP client for the movieshelf API.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// New builds a client for the server at baseURL. token is sent as a bearer
// credential when non-empty.
func New(baseURL, token string) (*Client, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return nil, errors.New("server url is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""
	return &Client{
		base:  base,
		token: token,
		http:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// FromConfig builds a client targeting the configured server.
func FromConfig(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	return New(cfg.ServerURL(), cfg.Server.APIToken)
}

// BaseURL returns the server root the client targets.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// List returns the full collection.
func (c *Client) List(ctx context.Context) ([]api.Movie, error) {
	var payload api.MovieListResponse
	if err := c.do(ctx, http.MethodGet, "/api/movies", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Movies, nil
}

// Get fetches one movie by id.
func (c *Client) Get(ctx context.Context, id int64) (api.Movie, error) {
	var payload api.MovieResponse
	path := "/api/movies/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return api.Movie{}, err
	}
	return payload.Movie, nil
}

// Add appends a movie with the given title.
func (c *Client) Add(ctx context.Context, title string) (api.Movie, error) {
	var payload api.MovieResponse
	body := api.CreateMovieRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "/api/movies", body, &payload); err != nil {
		return api.Movie{}, err
	}
	return payload.Movie, nil
}

// Health reports server liveness.
func (c *Client) Health(ctx context.Context) (api.HealthResponse, error) {
	var payload api.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &payload); err != nil {
		return api.HealthResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.base.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload api.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
