// Package smartthings provides a typed model of the SmartThings cloud API
// and a minimal REST client for reading devices and their status.
package smartthings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public SmartThings API endpoint.
const DefaultBaseURL = "https://api.smartthings.com/v1"

// Client is a read-only SmartThings API client authenticated with a
// personal access token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout overrides the per-request timeout. Values <= 0 are ignored.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient returns a Client authenticated with the given personal access
// token.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		var e struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		json.Unmarshal(body, &e)

		return &APIError{StatusCode: resp.StatusCode, Message: e.Error.Message}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// Devices returns all devices visible to the token's account. The returned
// devices have no status snapshot; call DeviceStatus to populate one.
func (c *Client) Devices(ctx context.Context) ([]*Device, error) {
	var page struct {
		Items []*Device `json:"items"`
	}

	if err := c.get(ctx, "/devices", &page); err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	return page.Items, nil
}

// DeviceStatus fetches the full status snapshot for the given device.
func (c *Client) DeviceStatus(ctx context.Context, deviceID string) (DeviceStatus, error) {
	var status struct {
		Components DeviceStatus `json:"components"`
	}

	if err := c.get(ctx, "/devices/"+deviceID+"/status", &status); err != nil {
		return nil, fmt.Errorf("fetching status of %s: %w", deviceID, err)
	}

	return status.Components, nil
}

// Refresh fetches and installs a fresh status snapshot on the device.
func (c *Client) Refresh(ctx context.Context, d *Device) error {
	status, err := c.DeviceStatus(ctx, d.DeviceID)
	if err != nil {
		return err
	}

	d.Status = status

	return nil
}
