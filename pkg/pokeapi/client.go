// Package pokeapi is a small client for the public PokeAPI REST service.
//
// Nothing fetched here is cached; each call goes to the network.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/pokedex/pkg/format"
)

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

var (
	// ErrFetchFailed covers transport failures, unexpected HTTP statuses and
	// undecodable bodies.
	ErrFetchFailed = errors.New("pokeapi: fetch failed")
	// ErrNotFound is returned when the service answers 404.
	ErrNotFound = errors.New("pokeapi: not found")
)

// Client talks to a PokeAPI compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client rooted at baseURL, or DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns the full catalog as name/reference pairs.
func (c *Client) List(ctx context.Context) ([]NamedRef, error) {
	var out listResponse
	if err := c.get(ctx, c.baseURL+"/pokemon?limit=100000&offset=0", &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// ListByType returns the members of a type. ref is either a type name or the
// type's full reference URL.
func (c *Client) ListByType(ctx context.Context, ref string) ([]NamedRef, error) {
	var out typeResponse
	if err := c.get(ctx, c.typeURL(ref), &out); err != nil {
		return nil, err
	}
	members := make([]NamedRef, 0, len(out.Pokemon))
	for _, p := range out.Pokemon {
		members = append(members, p.Pokemon)
	}
	return members, nil
}

// Types lists every category the service knows about.
func (c *Client) Types(ctx context.Context) ([]Category, error) {
	var out listResponse
	if err := c.get(ctx, c.baseURL+"/type/", &out); err != nil {
		return nil, err
	}
	cats := make([]Category, 0, len(out.Results))
	for _, r := range out.Results {
		cats = append(cats, Category{ID: r.Name, Name: format.Capitalize(r.Name), URL: r.URL})
	}
	return cats, nil
}

// Record fetches a single record by numeric id or exact name.
func (c *Client) Record(ctx context.Context, idOrName string) (*Record, error) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	if key == "" {
		return nil, fmt.Errorf("%w: empty id or name", ErrNotFound)
	}
	return c.RecordByRef(ctx, c.baseURL+"/pokemon/"+url.PathEscape(key)+"/")
}

// RecordByRef fetches a record from its full reference URL.
func (c *Client) RecordByRef(ctx context.Context, ref string) (*Record, error) {
	var out pokemonResponse
	if err := c.get(ctx, ref, &out); err != nil {
		return nil, err
	}
	r := out.record()
	slices.SortStableFunc(r.Types, func(a, b TypeSlot) int { return a.Slot - b.Slot })
	return r, nil
}

func (c *Client) typeURL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.baseURL + "/type/" + url.PathEscape(strings.ToLower(strings.TrimSpace(ref))) + "/"
}

func (c *Client) get(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s returned %s", ErrFetchFailed, target, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrFetchFailed, target, err)
	}
	return nil
}
