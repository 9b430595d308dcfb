// Package upstream is the thin HTTP client for the remote profile, job and
// chat API. Every call is a single-shot request: no retries, no caching,
// no de-duplication. Failures surface as errors for the caller's
// component-local error state.
package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrProfileNotFound is returned when the API answers 404 for a profile
// lookup. Callers treat it the same as any other lookup failure when
// deciding where to route, but the distinction stays in the logs.
var ErrProfileNotFound = errors.New("profile not found")

// StatusError carries a non-2xx response: the status code and a truncated
// copy of the body for the logs.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

// do issues the request and decodes a 2xx JSON body into out (skipped when
// out is nil). Non-2xx responses become a *StatusError.
func (c *Client) do(req *http.Request, out any) error {
	if c == nil || c.client == nil {
		return errors.New("nil upstream client")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		body := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Upstream] %s %s status=%d body=%q", req.Method, req.URL.Path, resp.StatusCode, body)
		}
		return &StatusError{Status: resp.StatusCode, Body: body}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}
