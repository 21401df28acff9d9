// Package pokeapi is a small client for the parts of PokeAPI needed to build a team.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/nathanieltooley/pokeroster/pokeapi Client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nathanieltooley/pokeroster/cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DEFAULT_BASE_URL = "https://pokeapi.co/api/v2"

var (
	// ErrNotFound means the API answered 404 for the resource
	ErrNotFound = errors.New("resource not found")
	// ErrUnavailable covers transport failures and any other non-success status
	ErrUnavailable = errors.New("reference data unavailable")
)

var clientLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokeapi").Logger()
	return &logger
}

// StatusError is returned for a non-success, non-404 response
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// Client resolves creature identifiers and resource urls into records
type Client interface {
	// GetPokemon looks a Pokemon up by its pokedex id or name
	GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error)
	// GetAbility follows an ability url from a Pokemon record
	GetAbility(ctx context.Context, abilityUrl string) (*Ability, error)
	// GetMove follows a move url from a Pokemon record
	GetMove(ctx context.Context, moveUrl string) (*Move, error)
}

type Config struct {
	// BaseURL defaults to DEFAULT_BASE_URL
	BaseURL string
	// HTTPTimeout defaults to 30 seconds
	HTTPTimeout time.Duration
	// Cache defaults to an in-memory cache
	Cache cache.Store
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DEFAULT_BASE_URL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewMemory()
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	return nil
}

// HTTPClient is the Client that talks to PokeAPI over http
type HTTPClient struct {
	baseUrl string
	http    *http.Client
	cache   cache.Store
}

func New(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &HTTPClient{
		baseUrl: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		cache:   cfg.Cache,
	}, nil
}

func (c *HTTPClient) GetPokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	// PokeAPI only matches lower case names
	identifier := strings.ToLower(strings.TrimSpace(idOrName))
	if identifier == "" {
		return nil, fmt.Errorf("empty pokemon identifier: %w", ErrNotFound)
	}

	return Follow[Pokemon](ctx, c, fmt.Sprintf("%s/pokemon/%s", c.baseUrl, url.PathEscape(identifier)))
}

func (c *HTTPClient) GetAbility(ctx context.Context, abilityUrl string) (*Ability, error) {
	return Follow[Ability](ctx, c, abilityUrl)
}

func (c *HTTPClient) GetMove(ctx context.Context, moveUrl string) (*Move, error) {
	return Follow[Move](ctx, c, moveUrl)
}

// FollowNamedResource fetches whatever a NamedApiResource points at
func FollowNamedResource[T any](ctx context.Context, c *HTTPClient, n NamedApiResource) (*T, error) {
	return Follow[T](ctx, c, n.Url)
}

// Follow GETs resourceUrl (or reads it from the cache) and decodes it into T
func Follow[T any](ctx context.Context, c *HTTPClient, resourceUrl string) (*T, error) {
	body, err := c.get(ctx, resourceUrl)
	if err != nil {
		return nil, err
	}

	followed := new(T)
	if err := json.Unmarshal(body, followed); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", resourceUrl, err)
	}

	return followed, nil
}

func (c *HTTPClient) get(ctx context.Context, resourceUrl string) ([]byte, error) {
	cached, ok, err := c.cache.Get(ctx, resourceUrl)
	if err != nil {
		// A broken cache shouldn't stop a lookup
		clientLogger().Warn().Err(err).Str("url", resourceUrl).Msg("cache read failed")
	} else if ok {
		clientLogger().Debug().Str("url", resourceUrl).Msg("cache hit")
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resourceUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", resourceUrl, err)
	}
	req.Header.Set("Accept", "application/json")

	clientLogger().Debug().Str("url", resourceUrl).Msg("querying")
	response, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", resourceUrl, ErrUnavailable, err)
	}
	defer response.Body.Close()

	clientLogger().Debug().Str("url", resourceUrl).Int("status", response.StatusCode).Msg("response")

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", resourceUrl, ErrNotFound)
	case response.StatusCode != http.StatusOK:
		return nil, &StatusError{Url: resourceUrl, StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", resourceUrl, ErrUnavailable, err)
	}

	if err := c.cache.Set(ctx, resourceUrl, body); err != nil {
		clientLogger().Warn().Err(err).Str("url", resourceUrl).Msg("cache write failed")
	}

	return body, nil
}
