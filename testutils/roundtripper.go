package testutils

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sync"

	"go.uber.org/atomic"
)

var ErrNoCannedResponses = errors.New("recording round tripper has no canned responses")

// RecordedRequest is a copy of a request taken before the body was consumed.
type RecordedRequest struct {
	Method string
	URL    string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

type CannedResponse struct {
	StatusCode int
	Body       string
	Err        error
}

// RecordingRoundTripper answers requests with canned responses in order,
// repeating the last one once they run out, and records every request it
// sees. With no responses every request fails with ErrNoCannedResponses. It
// is safe for concurrent use.
type RecordingRoundTripper struct {
	Responses []CannedResponse

	lock     sync.Mutex
	requests []RecordedRequest
	count    atomic.Int64
}

func NewRecordingRoundTripper(responses ...CannedResponse) *RecordingRoundTripper {
	return &RecordingRoundTripper{
		Responses: responses,
	}
}

func (rt *RecordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Path:   req.URL.Path,
		Query:  req.URL.Query(),
		Header: req.Header.Clone(),
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, err
		}
		rec.Body = body
	}

	rt.lock.Lock()
	rt.requests = append(rt.requests, rec)
	rt.lock.Unlock()

	idx := int(rt.count.Inc() - 1)
	if len(rt.Responses) == 0 {
		return nil, ErrNoCannedResponses
	}
	if idx >= len(rt.Responses) {
		idx = len(rt.Responses) - 1
	}
	canned := rt.Responses[idx]
	if canned.Err != nil {
		return nil, canned.Err
	}

	statusCode := canned.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	return &http.Response{
		Status:        http.StatusText(statusCode),
		StatusCode:    statusCode,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(bytes.NewReader([]byte(canned.Body))),
		ContentLength: int64(len(canned.Body)),
		Request:       req,
	}, nil
}

func (rt *RecordingRoundTripper) Requests() []RecordedRequest {
	rt.lock.Lock()
	defer rt.lock.Unlock()

	out := make([]RecordedRequest, len(rt.requests))
	copy(out, rt.requests)
	return out
}

func (rt *RecordingRoundTripper) Count() int {
	return int(rt.count.Load())
}

var _ http.RoundTripper = (*RecordingRoundTripper)(nil)
