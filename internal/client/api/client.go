package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelwitz/smart-fit/internal/client/config"
	"github.com/michaelwitz/smart-fit/internal/client/session"
	"github.com/michaelwitz/smart-fit/internal/common"
	"github.com/michaelwitz/smart-fit/internal/logging"
)

// Client mediates every HTTP call to the Smart Fit API.
type Client struct {
	baseURL        string
	http           *http.Client
	session        *session.Store
	log            logging.Logger
	onUnauthorized func()
}

// New builds a Client over the given session store. The per-request timeout
// comes from the config; there is no other bound and no retrying.
func New(cfg *config.Config, store *session.Store, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		session: store,
		log:     log,
	}
}

// OnUnauthorized registers fn to run whenever any response comes back 401,
// after the credential has been cleared. The consuming application uses it
// to reset its authenticated state. Must be called before issuing requests.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do runs the request pipeline shared by every operation: marshal the body,
// attach the bearer credential when one is stored, send, and interpret the
// response. fallback is the operation's human-readable failure message, used
// when the server does not provide one.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	token, err := c.session.Credential(ctx)
	if err != nil {
		// A broken local store must not block the call; send unauthenticated.
		c.log.Error(ctx, "failed to read credential, sending unauthenticated", "error", err)
		token = ""
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s: %w", fallback, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, common.ErrUnavailable)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Server-side invalidation wins over any local expiry check: drop the
		// credential and tell the application to reset.
		c.log.Warn(ctx, "unauthorized response, clearing credential", "path", path)
		if err := c.session.ClearCredential(ctx); err != nil {
			c.log.Error(ctx, "failed to clear credential", "error", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s: %w", fallback, common.ErrUnauthorized)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{StatusCode: resp.StatusCode, Message: serverMessage(data, fallback)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
	}

	return nil
}

// serverMessage extracts a human-readable message from an error response
// body. The API answers JSON {message} or {error}; middlware and proxies may
// answer plain text.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	if s := strings.TrimSpace(string(body)); s != "" && !strings.HasPrefix(s, "{") && len(s) <= 200 {
		return s
	}

	return fallback
}
