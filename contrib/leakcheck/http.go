package leakcheck

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

var httpTrackingEnabled atomic.Bool
var trackedBodiesLock sync.Mutex
var trackedBodies []*trackedBody

func EnableHttpResponseTracking() {
	httpTrackingEnabled.Store(true)
}

// WrapHttpResponse replaces the response body with one that records where it
// was opened, until it is either read to the end or closed.
func WrapHttpResponse(resp *http.Response) *http.Response {
	if !httpTrackingEnabled.Load() || resp == nil || resp.Body == nil {
		return resp
	}

	body := &trackedBody{
		parent:     resp.Body,
		stackTrace: debug.Stack(),
	}
	if resp.Request != nil {
		body.method = resp.Request.Method
		body.path = resp.Request.URL.Path
	}

	trackedBodiesLock.Lock()
	trackedBodies = append(trackedBodies, body)
	trackedBodiesLock.Unlock()

	resp.Body = body
	return resp
}

func untrackBody(b *trackedBody) {
	trackedBodiesLock.Lock()
	idx := slices.Index(trackedBodies, b)
	if idx >= 0 {
		trackedBodies = slices.Delete(trackedBodies, idx, idx+1)
	}
	trackedBodiesLock.Unlock()
}

// LeakedHttpResponseCount returns how many tracked bodies are still open.
func LeakedHttpResponseCount() int {
	trackedBodiesLock.Lock()
	defer trackedBodiesLock.Unlock()
	return len(trackedBodies)
}

func ReportLeakedHttpResponses() bool {
	trackedBodiesLock.Lock()
	defer trackedBodiesLock.Unlock()

	if len(trackedBodies) == 0 {
		log.Printf("No leaked http responses")
		return true
	}

	log.Printf("Found %d leaked http responses", len(trackedBodies))
	for _, body := range trackedBodies {
		log.Printf("Leaked http response for %s %s: %s", body.method, body.path, body.stackTrace)
	}

	return false
}

type trackedBody struct {
	parent     io.ReadCloser
	method     string
	path       string
	stackTrace []byte
}

func (b *trackedBody) Read(p []byte) (int, error) {
	n, err := b.parent.Read(p)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		untrackBody(b)
	}
	return n, err
}

func (b *trackedBody) Close() error {
	untrackBody(b)
	return b.parent.Close()
}

var _ io.ReadCloser = (*trackedBody)(nil)
