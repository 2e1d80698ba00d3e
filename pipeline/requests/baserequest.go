package requests

import (
	"context"
	"errors"
	"net/http"
	"soloq/pkg/config"
	"time"
)

// Client does the HTTP requests against the Riot API.
// Authenticated requests share one rate limiter per client.
type Client struct {
	apiKey  string
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a request client from the Riot configuration.
// Every request is additionally capped by the given timeout, so no
// single call can hang past it even without a caller deadline.
func NewClient(cfg *config.RiotConfiguration, requestTimeout time.Duration) *Client {
	return &Client{
		apiKey:  cfg.ApiKey,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: NewRateLimiter(cfg),
	}
}

// AuthRequest does a authenticated request to the Riot API.
// It waits on the rate limiter before firing the request.
func (c *Client) AuthRequest(ctx context.Context, url string, method string) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, errors.New("can't do a authenticated request without the API key")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, wrapRequestError(url, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	// Add the token from the configuration.
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapRequestError(url, err)
	}

	return resp, nil
}

// Request does a simple unauthenticated request (Data Dragon assets).
func (c *Client) Request(ctx context.Context, url string, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapRequestError(url, err)
	}

	return resp, nil
}
