package dunehttpx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// APIKeyHeader is the header the credential travels in. It is never placed in
// the query string or the request body.
const APIKeyHeader = "X-Dune-Api-Key"

type RequestBuilder struct {
	UserAgent string
	Endpoint  string
	APIKey    string
}

func (h RequestBuilder) NewRequest(
	ctx context.Context,
	method, path, contentType string,
	body io.Reader,
) (*http.Request, error) {
	uri := strings.TrimSuffix(h.Endpoint, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if h.UserAgent != "" {
		req.Header.Set("User-Agent", h.UserAgent)
	}

	if h.APIKey != "" {
		req.Header.Set(APIKeyHeader, h.APIKey)
	}

	return req, nil
}
