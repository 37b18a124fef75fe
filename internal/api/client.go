package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token attached to every request. An empty
// token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the single HTTP access layer: every screen reads and writes
// through it, so token attachment and envelope unwrapping happen in exactly
// one place.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// List reads a collection at path with the given query and decodes the
// rows into out (a pointer to a slice). Pagination is nil when the server
// answered with a bare array.
func (c *Client) List(ctx context.Context, path string, query ListQuery, out any) (*Pagination, error) {
	target := c.baseURL + path
	if encoded := query.Values().Encode(); encoded != "" {
		target += "?" + encoded
	}
	return c.do(ctx, http.MethodGet, target, nil, out)
}

// Get reads a single entity at path/id.
func (c *Client) Get(ctx context.Context, path string, id int64, out any) error {
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s%s/%d", c.baseURL, path, id), nil, out)
	return err
}

// Create issues POST path with body and decodes the created entity into out.
func (c *Client) Create(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, c.baseURL+path, body, out)
	return err
}

// Update issues PUT path/id with body, a full-object replace.
func (c *Client) Update(ctx context.Context, path string, id int64, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s%s/%d", c.baseURL, path, id), body, out)
	return err
}

// Delete issues DELETE path/id. A bare 2xx and a success-true envelope both
// count as success; a success-false envelope surfaces as *ServerError.
func (c *Client) Delete(ctx context.Context, path string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%s/%d", c.baseURL, path, id), nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, target string, body, out any) (*Pagination, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request: %v", ErrDecode, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", target).Msg("request failed")
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrConnection, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 400:
		// Error bodies still follow the envelope convention when present.
		// Anything else (a proxy's HTML error page, plain text) carries no
		// message; the view shows its generic fallback instead.
		if _, decodeErr := decodeBody(payload, nil); decodeErr != nil {
			if se, ok := AsServerError(decodeErr); ok {
				return nil, se
			}
		}
		return nil, &ServerError{}
	}

	if out == nil && len(bytes.TrimSpace(payload)) == 0 {
		return nil, nil
	}
	return decodeBody(payload, out)
}
