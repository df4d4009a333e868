// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/webhook-service/internal/logging"
)

const (
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 1 << 20
)

type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *response) ok() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *response) decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// remote wraps the outbound client shared by every adapter.
type remote struct {
	client  *http.Client
	timeout time.Duration

	logger logging.LoggerInterface
}

// do issues a single call bounded by the per-call timeout, transport failures wrap ErrRemoteCallFailed.
func (r *remote) do(ctx context.Context, method, url string, headers map[string]string, body []byte) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRemoteCallFailed, method, redact(url), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", ErrRemoteCallFailed, method, err)
	}

	r.logger.Debugf("%s %s -> %d", method, redact(url), resp.StatusCode)

	return &response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (r *remote) doJSON(ctx context.Context, method, url string, headers map[string]string, payload any) (*response, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
	}
	return r.do(ctx, method, url, headers, body)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// NewHTTPClient returns the instrumented client used for provider calls.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

func newRemote(client *http.Client, timeout time.Duration, logger logging.LoggerInterface) *remote {
	r := new(remote)

	r.client = client
	if r.client == nil {
		r.client = NewHTTPClient()
	}

	r.timeout = timeout
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}

	r.logger = logger

	return r
}
