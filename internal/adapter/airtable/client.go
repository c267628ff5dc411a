// Package airtable is the client for the external record store. It speaks the
// Airtable REST contract: per-table record endpoints keyed by base id, bearer
// authentication and a separate per-field attachment upload endpoint.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 16 << 20

// opGet is the only operation whose 404 means a missing record.
const opGet = "get"

// Client issues authenticated requests against the store with bounded retry.
// It is safe for concurrent use.
type Client struct {
	apiURL     string
	contentURL string
	baseID     string
	token      string
	retry      config.RetryConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from explicit store and retry settings.
func NewClient(store config.StoreConfig, retryCfg config.RetryConfig, logger *slog.Logger) *Client {
	return &Client{
		apiURL:     strings.TrimRight(store.APIURL, "/"),
		contentURL: strings.TrimRight(store.ContentURL, "/"),
		baseID:     store.BaseID,
		token:      store.Token,
		retry:      retryCfg,
		httpClient: &http.Client{
			Timeout:   store.RequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: logger.With("adapter", "airtable"),
	}
}

// call describes one logical store operation.
type call struct {
	table  string
	op     string
	method string
	url    string
	body   any
	// retryTransient allows one retry after a network error or 5xx.
	retryTransient bool
}

// do runs a call under the retry policy: 429 waits RateLimitBackoff and is
// retried up to MaxAttempts in total; network errors and 5xx are retried once
// after TransientBackoff when the call allows it; anything else fails at once.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	var payload []byte
	if cl.body != nil {
		var err error
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("airtable: %s %q: encode body: %w", cl.op, cl.table, err)
		}
	}

	var (
		attempts         int
		transientRetried bool
		last             error
	)

	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		if attempts >= c.retry.MaxAttempts {
			return 0, true
		}

		var wait time.Duration
		switch {
		case errors.Is(last, domain.ErrRateLimited):
			wait = c.retry.RateLimitBackoff
		case errors.Is(last, domain.ErrStoreUnavailable) && cl.retryTransient && !transientRetried:
			transientRetried = true
			wait = c.retry.TransientBackoff
		default:
			return 0, true
		}

		c.log.WarnContext(ctx, "airtable retry",
			slog.String("op", cl.op),
			slog.String("table", cl.table),
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait),
			slog.String("reason", last.Error()),
		)
		return wait, false
	})

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		last = c.attempt(ctx, cl, payload, out)
		if errors.Is(last, domain.ErrRateLimited) || errors.Is(last, domain.ErrStoreUnavailable) {
			return retry.RetryableError(last)
		}
		return last
	})
	if err != nil {
		c.log.ErrorContext(ctx, "airtable request failed",
			slog.String("op", cl.op),
			slog.String("table", cl.table),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.log.DebugContext(ctx, "airtable request",
		slog.String("op", cl.op),
		slog.String("table", cl.table),
		slog.Int("attempts", attempts),
	)
	return nil
}

func (c *Client) attempt(ctx context.Context, cl call, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, cl.url, body)
	if err != nil {
		return fmt.Errorf("airtable: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return storeError(cl, 0, err.Error(), domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return storeError(cl, resp.StatusCode, "read body: "+err.Error(), domain.ErrStoreUnavailable)
	}

	switch status := resp.StatusCode; {
	case status >= 200 && status < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("airtable: %s %q: decode response: %w", cl.op, cl.table, err)
		}
		return nil
	case status == http.StatusTooManyRequests:
		return storeError(cl, status, apiErrorMessage(raw), domain.ErrRateLimited)
	case status >= 500:
		return storeError(cl, status, apiErrorMessage(raw), domain.ErrStoreUnavailable)
	case status == http.StatusNotFound && cl.op == opGet:
		return storeError(cl, status, apiErrorMessage(raw), domain.ErrNotFound)
	default:
		return storeError(cl, status, apiErrorMessage(raw), domain.ErrStoreRejected)
	}
}

func storeError(cl call, status int, message string, kind error) *domain.StoreError {
	return &domain.StoreError{
		Table:   cl.table,
		Op:      cl.op,
		Status:  status,
		Message: message,
		Err:     kind,
	}
}

// apiErrorMessage extracts the message from an error body. The store sends
// either {"error":{"type":..,"message":..}} or {"error":"TYPE"}.
func apiErrorMessage(raw []byte) string {
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Error, &detail); err == nil {
			switch {
			case detail.Message != "":
				return detail.Message
			case detail.Type != "":
				return detail.Type
			}
		}
		var code string
		if err := json.Unmarshal(env.Error, &code); err == nil && code != "" {
			return code
		}
	}

	msg := strings.TrimSpace(string(raw))
	if len(msg) > 500 {
		msg = msg[:500]
	}
	return msg
}

func (c *Client) tableURL(table string) string {
	return c.apiURL + "/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
}

func (c *Client) recordURL(table, id string) string {
	return c.tableURL(table) + "/" + url.PathEscape(id)
}

func (c *Client) uploadURL(recordID, field string) string {
	return c.contentURL + "/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(recordID) + "/" +
		url.PathEscape(field) + "/uploadAttachment"
}
