// Package providers holds the HTTP adapters for the external analysis
// services: phone-number validation, URL reputation, AI text and image
// analysis, and the news feed. Every adapter returns plain errors on
// failure; the application layer translates those into local-heuristic
// fallbacks, so no adapter implements fallback logic itself.
package providers

import (
	"net/http"
	"time"
)

// clientConfig carries the knobs shared by all provider clients plus
// the polling policy used by the URL scanner. Tests override the base
// URL to point at a local server.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client

	pollAttempts int
	pollInitial  time.Duration
	pollCap      time.Duration
}

// Option customizes a provider client.
type Option func(*clientConfig)

// WithBaseURL overrides the service endpoint.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithPollPolicy overrides the scan-polling policy: attempts is the
// maximum number of status checks, initial the first wait, cap the
// ceiling the doubling backoff saturates at.
func WithPollPolicy(attempts int, initial, cap time.Duration) Option {
	return func(c *clientConfig) {
		c.pollAttempts = attempts
		c.pollInitial = initial
		c.pollCap = cap
	}
}

func newClientConfig(baseURL string, opts ...Option) clientConfig {
	cfg := clientConfig{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollAttempts: 5,
		pollInitial:  2 * time.Second,
		pollCap:      15 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
