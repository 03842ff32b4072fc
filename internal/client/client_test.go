package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movieshelf/internal/api"
	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
	"movieshelf/internal/testsupport"
	"movieshelf/internal/web"
)

func newServer(t *testing.T, opts ...testsupport.ConfigOption) *httptest.Server {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	srv, err := web.New(cfg, testsupport.MustNewStore(t, cfg), logging.NewNop())
	if err != nil {
		t.Fatalf("web.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestClientRoundTrip(t *testing.T) {
	ts := newServer(t)
	c, err := New(ts.URL, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	added, err := c.Add(ctx, "Inception")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added != (api.Movie{ID: 2, Title: "Inception"}) {
		t.Fatalf("unexpected movie: %+v", added)
	}

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}

	got, err := c.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "A River Runs Through It" {
		t.Fatalf("unexpected title %q", got.Title)
	}

	health, err := c.Health(ctx)
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if health.Movies != 2 {
		t.Fatalf("expected 2 movies, got %d", health.Movies)
	}
}

func TestClientMapsErrors(t *testing.T) {
	ts := newServer(t)
	c, err := New(ts.URL, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	_, err = c.Get(ctx, 999)
	if !errors.Is(err, movies.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = c.Add(ctx, "   ")
	if !errors.Is(err, movies.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "title must not be blank" {
		t.Fatalf("unexpected api error: %#v", err)
	}
}

func TestClientSendsToken(t *testing.T) {
	ts := newServer(t, testsupport.WithAPIToken("s3cret"))
	ctx := context.Background()

	anon, _ := New(ts.URL, "")
	_, err := anon.Add(ctx, "Heat")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	authed, _ := New(ts.URL, "s3cret")
	if _, err := authed.Add(ctx, "Heat"); err != nil {
		t.Fatalf("Add with token: %v", err)
	}
}

func TestClientUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := New(url, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.List(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNewNormalizesURL(t *testing.T) {
	c, err := New("127.0.0.1:7488/ignored?x=1", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.BaseURL(); got != "http://127.0.0.1:7488" {
		t.Fatalf("unexpected base url %q", got)
	}
	if _, err := New("  ", ""); err == nil {
		t.Fatal("expected error for empty url")
	}
}
