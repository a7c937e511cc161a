package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goware/urlx"
	"github.com/pkg/errors"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// userAgent identifies this client to the paste service. It must be
// updated with each material change to how a client makes requests.
const userAgent = "permsctl/v20260830"

// Client is a paste service (bytebin) HTTP client.
type Client struct {
	baseURL url.URL
	http    *http.Client
}

// NewClient creates a new paste service client.
func NewClient(address string) (*Client, error) {
	u, err := urlx.ParseWithDefaultScheme(address, "https")
	if err != nil {
		return nil, err
	}

	if u.Path != "" || u.Opaque != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return nil, errors.New("address must be a base server address in the form [scheme://]host[:port]")
	}

	return &Client{
		baseURL: *u,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Address returns a client's host and port.
func (c *Client) Address() string {
	return c.baseURL.String()
}

func (c *Client) sendBytes(
	ctx context.Context,
	method string,
	path string,
	header http.Header,
	body []byte,
) (*http.Response, error) {
	u := url.URL{Scheme: c.baseURL.Scheme, Host: c.baseURL.Host, Path: path}
	req, err := http.NewRequest(method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", userAgent)

	return c.http.Do(req.WithContext(ctx))
}

// errorFromResponse creates an error from an HTTP response, or nil on success.
func errorFromResponse(resp *http.Response) error {
	// Anything less than 400 isn't an error, so don't produce one.
	if resp.StatusCode < 400 {
		return nil
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Errorf("failed to read response: %v", err)
	}

	var apiErr api.Error
	if err := json.Unmarshal(bytes, &apiErr); err != nil {
		return api.Error{Code: resp.StatusCode, Message: resp.Status}
	}
	if apiErr.Code == 0 {
		apiErr.Code = resp.StatusCode
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}

// parseResponse parses the response body and stores the result in the given
// value. The value parameter should be a pointer to the desired structure.
func parseResponse(resp *http.Response, value interface{}) error {
	if err := errorFromResponse(resp); err != nil {
		return err
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(bytes, value)
}

// safeClose closes an object while safely handling nils.
func safeClose(closer io.Closer) {
	if closer == nil {
		return
	}
	_ = closer.Close()
}
