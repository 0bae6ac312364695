package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
)

// Client queries the Google Books volumes endpoint
type Client struct {
	baseURL      string
	apiKey       string
	maxResults   int
	orderBy      string
	printType    string
	langRestrict string
	maxRetries   int
	backoff      time.Duration

	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ domain.Catalog = (*Client)(nil)

// volumesResponse matches the volumes list payload
type volumesResponse struct {
	Kind       string        `json:"kind"`
	TotalItems int           `json:"totalItems"`
	Items      []domain.Book `json:"items"`
}

// NewClient creates a client from catalog configuration
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		maxResults:   cfg.MaxResults,
		orderBy:      cfg.OrderBy,
		printType:    cfg.PrintType,
		langRestrict: cfg.LangRestrict,
		maxRetries:   cfg.Retries,
		backoff:      500 * time.Millisecond,
		// A zero timeout leaves requests bounded only by ctx
		httpClient: &http.Client{
			Timeout: max(cfg.Timeout, 0),
		},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Search runs one volumes query and returns every item in the response
func (c *Client) Search(ctx context.Context, q domain.Query) ([]domain.Book, error) {
	u := c.searchURL(q)
	c.logger.Debug("catalog search", "query", q.Terms, "genre", q.Genre)

	var res volumesResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	c.logger.Debug("catalog search complete", "query", q.Terms, "count", len(res.Items), "total", res.TotalItems)
	return res.Items, nil
}

func (c *Client) searchURL(q domain.Query) string {
	params := url.Values{}
	params.Set("q", q.Encode())
	if c.orderBy != "" {
		params.Set("orderBy", c.orderBy)
	}
	if c.maxResults > 0 {
		params.Set("maxResults", strconv.Itoa(c.maxResults))
	}
	if c.printType != "" {
		params.Set("printType", c.printType)
	}
	if c.langRestrict != "" {
		params.Set("langRestrict", c.langRestrict)
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	return c.baseURL + "?" + params.Encode()
}

// get performs a GET with rate limiting. Transport errors, 429 and 5xx are
// retried only when retries are configured; the default is a single attempt.
func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(time.Duration(i) * c.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.doRequest(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry || ctx.Err() != nil || c.maxRetries == 0 {
			return err
		}
		lastErr = err
		if i < c.maxRetries {
			c.logger.Warn("catalog request failed, retrying", "attempt", i+1, "error", err)
		}
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

// doRequest performs one attempt. retry reports whether the failure is transient.
func (c *Client) doRequest(ctx context.Context, u string, target any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: unexpected status code %d", domain.ErrCatalogUnavailable, resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogUnavailable, err)
	}
	return false, nil
}

// Close releases idle connections
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
