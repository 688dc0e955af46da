// Package hades is a client of the damage assessment server endpoints used by the simulators.
package hades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	logPrefix  = "hades"
	defaultURL = "http://localhost:8080"

	// SessionCookie is the cookie the server reads the session token from
	SessionCookie = "hades_session"
)

// ResponseError is a non-2xx answer of the server
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// DiscoveryError is returned when a listing endpoint cannot be read
type DiscoveryError struct {
	Resource string
	Err      error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("Failed to fetch %s: %s", e.Resource, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Client calls the server on behalf of one authenticated actor
type Client struct {
	url    string
	token  string
	client *http.Client
}

// New - new client carrying sessionToken on every request.
// An empty url selects the local development server.
func New(url, sessionToken string, client *http.Client) *Client {
	u := defaultURL
	if url != "" {
		u = strings.TrimRight(url, "/")
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		url:    u,
		token:  sessionToken,
		client: client,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.token})
	return req, nil
}

// do sends req and decodes a successful JSON response into out when out is not nil
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (c *Client) list(ctx context.Context, resource, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &DiscoveryError{Resource: resource, Err: err}
	}

	if err := c.do(req, out); err != nil {
		return &DiscoveryError{Resource: resource, Err: err}
	}
	return nil
}
