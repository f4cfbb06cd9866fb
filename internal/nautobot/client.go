package nautobot

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/aiopnet/mcp-nautobot/internal/infra"
	"github.com/aiopnet/mcp-nautobot/metrics"
	"github.com/aiopnet/mcp-nautobot/tracing"
)

const (
	// API endpoint paths, relative to <base>/api
	pathStatus      = "/status/"
	pathIPAddresses = "/ipam/ip-addresses/"
	pathPrefixes    = "/ipam/prefixes/"

	// DefaultUserAgent identifies the client to Nautobot
	DefaultUserAgent = "mcp-nautobot/1.0 (github.com/aiopnet/mcp-nautobot)"
)

// Client provides access to the Nautobot REST API. All retrieval operations
// are read-only, rate limited, and return either validated records or one of
// the three typed error kinds in errors.go.
type Client struct {
	config     *Config
	httpClient *http.Client
	limiter    *RateLimiter
	logger     *slog.Logger
	dedup      *infra.RequestDeduplicator

	closeMu sync.Mutex
	closed  bool
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimiter sets a custom rate limiter.
func WithRateLimiter(rl *RateLimiter) ClientOption {
	return func(c *Client) {
		c.limiter = rl
	}
}

// NewClient creates a Nautobot client from the given configuration. The
// caller owns the client's lifetime and must call Close on shutdown.
func NewClient(config *Config, logger *slog.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	if !config.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- operator opted out via config
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		limiter: NewRateLimiter(config.RateLimit, RateWindow),
		logger:  logger,
		dedup:   infra.NewRequestDeduplicator(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized Nautobot base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL()
}

// Close releases the underlying connection pool. It is idempotent and safe
// to call without a prior successful request; retrieval operations issued
// after Close fail fast with a ConnectionError.
func (c *Client) Close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
}

func (c *Client) isClosed() bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	return c.closed
}

// do dispatches one HTTP request: rate limiter first (pacing observes intent
// to call, not completion), then the call itself, then outcome mapping onto
// the error taxonomy. On 2xx the decoded JSON body is returned as-is; the
// caller interprets pagination envelopes.
func (c *Client) do(ctx context.Context, method, path string, params url.Values) (json.RawMessage, error) {
	if c.isClosed() {
		return nil, &ConnectionError{Message: "client is closed"}
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, &ConnectionError{Message: "canceled while waiting for rate limiter", Err: err}
	}

	reqURL := c.config.APIBase() + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	ctx, span := tracing.StartSpan(ctx, "nautobot.request")
	defer span.End()
	tracing.AddRequestAttributes(span, method, path)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, &ConnectionError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.config.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", DefaultUserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordAPICall(path, time.Since(start).Seconds(), 0)
		return nil, &ConnectionError{Message: "request failed", Err: err}
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	metrics.RecordAPICall(path, time.Since(start).Seconds(), resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if readErr != nil {
		tracing.RecordError(span, readErr)
		return nil, &ConnectionError{Message: "failed to read response", Err: readErr}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: string(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 || !json.Valid(body) {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: "malformed response: expected JSON body"}
	}
	return json.RawMessage(body), nil
}

// TestConnection probes the Nautobot status endpoint. Connectivity testing
// is advisory: a ConnectionError is reported as false rather than returned.
// Authentication and API errors still propagate, since they indicate
// misconfiguration rather than unreachability.
func (c *Client) TestConnection(ctx context.Context) (bool, error) {
	_, err := c.do(ctx, http.MethodGet, pathStatus, nil)
	if err != nil {
		if IsConnection(err) {
			c.logger.Warn("Nautobot connection test failed", "error", err)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IPAddressFilters narrows an IP address listing. Empty fields are omitted
// from the request entirely.
type IPAddressFilters struct {
	Address string // exact address to match
	Prefix  string // containing prefix; sent as Nautobot's "parent" parameter
	Status  string // e.g. active, reserved, deprecated
	Role    string
	Tenant  string
	VRF     string
}

func (f IPAddressFilters) values() url.Values {
	params := url.Values{}
	setIfPresent(params, "address", f.Address)
	setIfPresent(params, "parent", f.Prefix)
	setIfPresent(params, "status", f.Status)
	setIfPresent(params, "role", f.Role)
	setIfPresent(params, "tenant", f.Tenant)
	setIfPresent(params, "vrf", f.VRF)
	return params
}

// PrefixFilters narrows a prefix listing.
type PrefixFilters struct {
	Prefix string
	Status string
	Site   string
	Role   string
	Tenant string
	VRF    string
}

func (f PrefixFilters) values() url.Values {
	params := url.Values{}
	setIfPresent(params, "prefix", f.Prefix)
	setIfPresent(params, "status", f.Status)
	setIfPresent(params, "site", f.Site)
	setIfPresent(params, "role", f.Role)
	setIfPresent(params, "tenant", f.Tenant)
	setIfPresent(params, "vrf", f.VRF)
	return params
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// GetIPAddresses retrieves one page of IP addresses matching the filters.
// Pagination is not followed automatically; limit and offset fully determine
// the page. Malformed entries in the response are skipped, not fatal.
func (c *Client) GetIPAddresses(ctx context.Context, filters IPAddressFilters, limit, offset int) ([]IPAddress, error) {
	params := filters.values()
	addPagination(params, limit, offset)

	raw, err := c.do(ctx, http.MethodGet, pathIPAddresses, params)
	if err != nil {
		return nil, err
	}

	results, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	addrs, dropped := decodeIPAddresses(results)
	if dropped > 0 {
		c.logger.Warn("Skipped malformed IP address records",
			"dropped", dropped,
			"returned", len(addrs))
		metrics.DroppedRecords.WithLabelValues("ip_address").Add(float64(dropped))
	}
	return addrs, nil
}

// GetPrefixes retrieves one page of prefixes matching the filters, with the
// same tolerant-parsing policy as GetIPAddresses.
func (c *Client) GetPrefixes(ctx context.Context, filters PrefixFilters, limit, offset int) ([]Prefix, error) {
	params := filters.values()
	addPagination(params, limit, offset)

	raw, err := c.do(ctx, http.MethodGet, pathPrefixes, params)
	if err != nil {
		return nil, err
	}

	results, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	prefixes, dropped := decodePrefixes(results)
	if dropped > 0 {
		c.logger.Warn("Skipped malformed prefix records",
			"dropped", dropped,
			"returned", len(prefixes))
		metrics.DroppedRecords.WithLabelValues("prefix").Add(float64(dropped))
	}
	return prefixes, nil
}

// GetIPAddressByID retrieves a single IP address. A 404 is translated to
// (nil, nil); any other error propagates. Concurrent lookups for the same ID
// are coalesced into one request.
func (c *Client) GetIPAddressByID(ctx context.Context, id string) (*IPAddress, error) {
	result, shared, err := c.dedup.Do(ctx, "ip:"+id, func() (interface{}, error) {
		raw, err := c.do(ctx, http.MethodGet, pathIPAddresses+url.PathEscape(id)+"/", nil)
		if err != nil {
			return nil, err
		}

		var ip IPAddress
		if err := json.Unmarshal(raw, &ip); err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Body: "malformed IP address record"}
		}
		if err := ip.Validate(); err != nil {
			return nil, &APIError{StatusCode: http.StatusOK, Body: err.Error()}
		}
		return &ip, nil
	})

	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if shared {
		c.logger.Debug("Coalesced duplicate IP address lookup", "id", id)
	}
	return result.(*IPAddress), nil
}

// SearchIPAddresses performs a free-text search across IP addresses using
// Nautobot's generic "q" parameter.
func (c *Client) SearchIPAddresses(ctx context.Context, query string, limit int) ([]IPAddress, error) {
	params := url.Values{}
	params.Set("q", query)
	addPagination(params, limit, 0)

	raw, err := c.do(ctx, http.MethodGet, pathIPAddresses, params)
	if err != nil {
		return nil, err
	}

	results, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	addrs, dropped := decodeIPAddresses(results)
	if dropped > 0 {
		c.logger.Warn("Skipped malformed IP address records in search",
			"query", query,
			"dropped", dropped)
		metrics.DroppedRecords.WithLabelValues("ip_address").Add(float64(dropped))
	}
	return addrs, nil
}

// addPagination merges limit/offset into the query. Zero values are omitted,
// matching the provider's defaults.
func addPagination(params url.Values, limit, offset int) {
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
}

// decodeEnvelope extracts the results array from a paginated list response.
// A missing results key yields an empty slice, not an error.
func decodeEnvelope(raw json.RawMessage) ([]json.RawMessage, error) {
	var envelope listEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Body:       "malformed response: expected paginated envelope",
		}
	}
	return envelope.Results, nil
}
