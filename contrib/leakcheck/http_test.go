package leakcheck

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request: &http.Request{
			Method: "GET",
			URL:    &url.URL{Path: "/api/v1/execution/abc/status"},
		},
	}
}

func TestHttpResponseTracking(t *testing.T) {
	EnableHttpResponseTracking()
	baseline := LeakedHttpResponseCount()

	closed := WrapHttpResponse(makeResponse(`{}`))
	drained := WrapHttpResponse(makeResponse(`{"success":true}`))
	leaked := WrapHttpResponse(makeResponse(`{}`))
	assert.Equal(t, baseline+3, LeakedHttpResponseCount())

	require.NoError(t, closed.Body.Close())
	assert.Equal(t, baseline+2, LeakedHttpResponseCount())

	_, err := io.ReadAll(drained.Body)
	require.NoError(t, err)
	assert.Equal(t, baseline+1, LeakedHttpResponseCount())

	// closing again after untracking must not disturb other entries
	require.NoError(t, drained.Body.Close())
	assert.Equal(t, baseline+1, LeakedHttpResponseCount())

	require.NoError(t, leaked.Body.Close())
	assert.Equal(t, baseline, LeakedHttpResponseCount())
}

func TestWrapNilResponse(t *testing.T) {
	assert.Nil(t, WrapHttpResponse(nil))
}
