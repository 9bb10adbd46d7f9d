package dunehttpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRoundTripper struct {
	err error
}

func (rt failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, rt.err
}

func TestClientWrapsTransportErrors(t *testing.T) {
	cause := errors.New("connection refused")

	req, err := RequestBuilder{Endpoint: "http://localhost"}.
		NewRequest(context.Background(), "GET", "/", "", nil)
	require.NoError(t, err)

	_, err = Client{Transport: failingRoundTripper{err: cause}}.Do(req)
	require.ErrorIs(t, err, ErrConnectError)
	require.ErrorIs(t, err, cause)

	var connErr ConnectError
	require.ErrorAs(t, err, &connErr)
}

func TestClientKeepsKeyOnRedirect(t *testing.T) {
	var finalKey string
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		finalKey = r.Header.Get(APIKeyHeader)
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	req, err := RequestBuilder{Endpoint: srv.URL, APIKey: "secret"}.
		NewRequest(context.Background(), "GET", "/old", "", nil)
	require.NoError(t, err)

	resp, err := Client{Transport: srv.Client().Transport}.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "secret", finalKey)
}
