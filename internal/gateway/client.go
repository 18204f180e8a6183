package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"conduitclient/internal/apierr"
	"conduitclient/internal/config"
	"conduitclient/internal/ports"
)

// maxBodyBytes bounds how much of a response is read into memory.
const maxBodyBytes = 1 << 20

type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

// Client is the API gateway: one method per backend operation, each issuing
// exactly one network call and normalizing every failure into the apierr
// taxonomy. Nothing above this layer interprets transport details.
type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialStore
	logger  *slog.Logger
}

var _ ports.ArticleGateway = (*Client)(nil)
var _ ports.UserGateway = (*Client)(nil)

// NewClient builds a gateway from configuration. The credential store
// supplies the auth header at call time and receives tokens returned by
// login and registration.
func NewClient(cfg config.APIConfig, creds ports.CredentialStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.HTTPTimeout()},
		creds:   creds,
		logger:  logger,
	}
}

// do performs the single network call for an operation: marshal, send,
// normalize. out may be nil for operations whose success payload is
// irrelevant to callers.
func (c *Client) do(ctx context.Context, op apierr.Op, method, path string, payload, out any, auth authMode) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apierr.Transport(op, 0, fmt.Sprintf("marshal request: %v", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apierr.Transport(op, 0, fmt.Sprintf("build request: %v", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeader(req, auth)

	reqID := uuid.NewString()
	c.debug("api request", "id", reqID, "op", string(op), "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.debug("api transport failure", "id", reqID, "error", err)
		return apierr.Transport(op, 0, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return apierr.Transport(op, resp.StatusCode, fmt.Sprintf("read response: %v", err))
	}

	c.debug("api response", "id", reqID, "op", string(op), "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return normalizeFailure(op, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return apierr.Unknown(op)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apierr.Unknown(op)
	}
	return nil
}

// setAuthHeader reads the session token at call time; optional auth sends
// the header only when a token is held.
func (c *Client) setAuthHeader(req *http.Request, auth authMode) {
	if auth == authNone {
		return
	}
	var token string
	if c.creds != nil {
		token = c.creds.Token()
	}
	if auth == authRequired || token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
