// Package backend implements the HTTP client for the banking aggregator
// API. It returns raw records; all shape interpretation happens downstream
// in the normalizer.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"fjacquet/bank-ledger/internal/cache"
	"fjacquet/bank-ledger/internal/ledgererror"
	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/rawrecord"
)

const (
	accountsPath = "/accounts"
	cashPath     = "/accounts/cash"

	accountsCacheKey = "accounts"
)

// Client fetches raw account data from the aggregator backend.
type Client interface {
	// FetchAccounts returns the raw bank account records. Any failure is a
	// batch-level error: no partial result is returned.
	FetchAccounts(ctx context.Context) ([]rawrecord.Record, error)

	// FetchCashAccount returns the locally-tracked cash account record, or
	// (nil, nil) when it has not been created yet.
	FetchCashAccount(ctx context.Context) (rawrecord.Record, error)
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
	cache   *cache.Cache
}

// NewHTTPClient creates a backend client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SetCache enables response caching for the accounts payload.
func (c *HTTPClient) SetCache(cache *cache.Cache) {
	c.cache = cache
}

// FetchAccounts implements Client.
func (c *HTTPClient) FetchAccounts(ctx context.Context) ([]rawrecord.Record, error) {
	body, err := c.accountsPayload(ctx)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Accounts []rawrecord.Record `json:"accounts"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ledgererror.FetchError{Endpoint: accountsPath, Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.logger.Debug("fetched accounts",
		logging.Field{Key: logging.FieldCount, Value: len(payload.Accounts)})
	return payload.Accounts, nil
}

func (c *HTTPClient) accountsPayload(ctx context.Context) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(accountsCacheKey); ok {
			c.logger.Debug("serving accounts payload from cache")
			return body, nil
		}
	}

	body, _, err := c.get(ctx, accountsPath)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(accountsCacheKey, body)
	}
	return body, nil
}

// FetchCashAccount implements Client. A 404 from the backend means the cash
// account has not been created yet and is not an error.
func (c *HTTPClient) FetchCashAccount(ctx context.Context) (rawrecord.Record, error) {
	body, status, err := c.get(ctx, cashPath)
	if status == http.StatusNotFound {
		c.logger.Debug("cash account not created yet")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec, err := rawrecord.Decode(body)
	if err != nil {
		return nil, &ledgererror.FetchError{Endpoint: cashPath, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return rec, nil
}

// get performs one GET request and returns the response body and status.
// Non-2xx statuses yield a FetchError alongside the status code.
func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, int, error) {
	requestID := uuid.NewString()
	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldEndpoint, Value: path},
		logging.Field{Key: logging.FieldRequestID, Value: requestID},
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, &ledgererror.FetchError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Error("backend request failed")
		return nil, 0, &ledgererror.FetchError{Endpoint: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("reading backend response failed")
		return nil, resp.StatusCode, &ledgererror.FetchError{Endpoint: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("backend returned non-success status",
			logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode})
		return body, resp.StatusCode, &ledgererror.FetchError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	return body, resp.StatusCode, nil
}
