package serverfn

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultPrefix is the path server functions are mounted under.
const DefaultPrefix = "/api"

// Client calls server functions over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL ("" for relative
// URLs, which the js/wasm transport resolves against the page).
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Call invokes name with args and decodes the result into out. args may be
// nil. Failures are returned as *Error.
func (c *Client) Call(ctx context.Context, name string, args, out any) error {
	var body io.Reader
	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			return &Error{Kind: KindSerialization, Message: err.Error()}
		}
		body = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + DefaultPrefix + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return &Error{Kind: KindRequest, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindRequest, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return Decode(string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDeserialization, Message: err.Error()}
	}
	return nil
}
