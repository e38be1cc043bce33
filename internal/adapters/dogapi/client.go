package dogapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dog-breeds-dashboard/internal/domain/breeds"
	"dog-breeds-dashboard/internal/platform/httpclient"
	"dog-breeds-dashboard/internal/platform/logger"
)

const (
	DefaultBaseURL      = "https://api.thedogapi.com/v1"
	DefaultAPIKeyHeader = "x-api-key"
	DefaultTimeout      = 10 * time.Second
)

// Config del cliente de The Dog API.
// Sin APIKey el cliente sigue funcionando: el header simplemente no se manda.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "x-api-key".
	APIKeyHeader string

	Timeout   time.Duration
	Transport http.RoundTripper // opcional (tests)
	Logger    logger.Logger     // opcional
}

// Client implementa breeds.Source contra la API HTTP.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

var _ breeds.Source = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   base,
		Timeout:   timeout,
		Headers:   map[string]string{h: cfg.APIKey},
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("dogapi: %w", err)
	}

	return &Client{
		http: hc,
		log:  log.With(map[string]any{"component": "dogapi"}),
	}, nil
}

// ListBreeds trae GET /breeds. Los registros sin id o sin nombre se descartan.
func (c *Client) ListBreeds(ctx context.Context) ([]breeds.Breed, error) {
	start := time.Now()

	var payload []breedPayload
	if err := c.http.GetJSON(ctx, "/breeds", &payload); err != nil {
		c.log.Warn("list breeds failed", map[string]any{"error": err.Error()})
		return nil, mapError("list breeds", err)
	}

	seen := make(map[string]struct{}, len(payload))
	out := make([]breeds.Breed, 0, len(payload))
	for i, p := range payload {
		if reason := p.validate(); reason != "" {
			c.log.Warn("dropping breed record", map[string]any{"index": i, "reason": reason})
			continue
		}
		if _, dup := seen[string(p.ID)]; dup {
			c.log.Warn("dropping breed record", map[string]any{"index": i, "reason": "duplicate id", "id": string(p.ID)})
			continue
		}
		seen[string(p.ID)] = struct{}{}
		out = append(out, p.toBreed())
	}

	c.log.Debug("list breeds", map[string]any{
		"count":       len(out),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return out, nil
}

// GetBreed trae GET /breeds/{id}. La API responde 200 con "{}" para ids
// desconocidos; eso también es ErrNotFound.
func (c *Client) GetBreed(ctx context.Context, id string) (breeds.Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeds.Breed{}, breeds.ErrInvalidInput
	}

	var p breedPayload
	if err := c.http.GetJSON(ctx, "/breeds/"+url.PathEscape(id), &p); err != nil {
		return breeds.Breed{}, mapError("get breed", err)
	}
	if p.validate() != "" {
		return breeds.Breed{}, fmt.Errorf("%w: id=%s", breeds.ErrNotFound, id)
	}
	return p.toBreed(), nil
}

func mapError(op string, err error) error {
	switch httpclient.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", breeds.ErrNotFound, op)
	case 0:
		return fmt.Errorf("%w: %s: %v", breeds.ErrUpstream, op, err)
	default:
		return fmt.Errorf("%w: %s: status=%d", breeds.ErrUpstream, op, httpclient.StatusCode(err))
	}
}
