package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emrekoca/restopos-admin/internal/session"
	"github.com/emrekoca/restopos-admin/pkg/config"
	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
	"github.com/emrekoca/restopos-admin/pkg/logger"
	"github.com/emrekoca/restopos-admin/pkg/metrics"
)

// Client is the typed consumer of the backend REST service. Every call
// carries the session's bearer token; a missing token fails locally before
// any network I/O. Failed calls are terminal: no retries.
type Client struct {
	base    *url.URL
	httpc   *http.Client
	session *session.Session
	logg    *logger.Logger
	metrics *metrics.APIMetrics
}

// New constructs an API client instance.
func New(cfg config.APIConfig, sess *session.Session, logg *logger.Logger, apiMetrics *metrics.APIMetrics) (*Client, error) {
	if sess == nil {
		return nil, fmt.Errorf("session required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base:    base,
		httpc:   &http.Client{Timeout: timeout},
		session: sess,
		logg:    logg,
		metrics: apiMetrics,
	}, nil
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// do performs one request and decodes a JSON response into out when out is
// non-nil. body may be nil; contentType is required when body is set.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	token, err := c.session.Token()
	if err != nil {
		// short-circuit: no network request without a token
		return err
	}

	endpoint := c.base.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	ctx = c.logg.WithEndpoint(ctx, path)
	started := time.Now()
	resp, err := c.httpc.Do(req)
	c.metrics.ObserveDuration(path, time.Since(started))
	if err != nil {
		c.metrics.IncFailure(path)
		c.logg.Error(ctx, "api request failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "request failed")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncFailure(path)
		return c.errorFromResponse(ctx, resp)
	}

	c.metrics.IncSuccess(path)
	c.logg.Debug(ctx, "api request succeeded")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding response")
	}
	return nil
}

func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	code := pkgerrors.FromStatus(resp.StatusCode)
	message := pkgerrors.MetadataFor(code).PublicMessage

	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && strings.TrimSpace(envelope.Message) != "" {
		message = envelope.Message
	}

	err := pkgerrors.New(code, message).WithDetails(map[string]any{"status": resp.StatusCode})
	c.logg.Error(ctx, "api request rejected", err)
	return err
}

// postJSON marshals v and POSTs it.
func (c *Client) postJSON(ctx context.Context, path string, v any, out any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(encoded), "application/json", out)
}

// deleteJSON issues a DELETE whose body carries the identifier.
func (c *Client) deleteJSON(ctx context.Context, path string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
	}
	return c.do(ctx, http.MethodDelete, path, bytes.NewReader(encoded), "application/json", nil)
}
