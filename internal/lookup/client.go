// Package lookup fetches IP metadata from the external geolocation API as
// single-shot, cancellable background tasks.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ipmark/ipmark/internal/ipinfo"
)

// Client calls the ipinfo-style HTTP API: GET <base>/<address>/json.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch issues one GET request for the given address and decodes the
// response. Non-2xx responses become *APIError, network and timeout failures
// *TransportError, and undecodable bodies *ParseError.
func (c *Client) Fetch(ctx context.Context, addr string) (*ipinfo.Record, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	var rec ipinfo.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &rec, nil
}
