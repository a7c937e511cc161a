package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/portalland/MiamiBeach-LuckPerms/api"
)

// postPath is the paste service's upload endpoint.
const postPath = "/post"

// PostContent uploads an already-gzipped body to the paste service and
// returns the key assigned to it. When oneTime is set the content is
// deleted by the service after its first read. The exchange is a single
// synchronous POST; no retry is attempted on failure.
func (c *Client) PostContent(
	ctx context.Context,
	body []byte,
	contentType string,
	oneTime bool,
) (string, error) {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Encoding", "gzip")
	if oneTime {
		header.Set("One-Time", "true")
	}

	resp, err := c.sendBytes(ctx, http.MethodPost, postPath, header, body)
	if err != nil {
		return "", err
	}
	defer safeClose(resp.Body)

	var result api.PostContentResponse
	if err := parseResponse(resp, &result); err != nil {
		return "", err
	}
	if result.Key == "" {
		return "", errors.New("paste service response contained no key")
	}
	return result.Key, nil
}
