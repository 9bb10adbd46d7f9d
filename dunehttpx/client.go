package dunehttpx

import (
	"errors"
	"net/http"

	"github.com/dunequery/dunecorex/contrib/leakcheck"
)

type Client struct {
	Transport http.RoundTripper
}

func (c Client) GetHttpClient() *http.Client {
	return &http.Client{
		Transport: c.Transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// The credential is a custom header, so carry it across redirects
			// from the first request in the chain.
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}

			oldest := via[0]
			key := oldest.Header.Get(APIKeyHeader)
			if key != "" {
				req.Header.Set(APIKeyHeader, key)
			}

			return nil
		},
	}
}

func (c Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		return nil, ConnectError{Cause: err}
	}

	return leakcheck.WrapHttpResponse(resp), nil
}
