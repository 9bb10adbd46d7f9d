package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/assert"
)

const fakeAPIPrefix = "/api/v1"

// FakeAPI is an httptest server that speaks the shape of the Dune API. Every
// route checks the method and the API key header; unregistered routes fail
// the test.
type FakeAPI struct {
	Server *httptest.Server
	Mux    *http.ServeMux
	APIKey string

	t assert.TestingT
}

func NewFakeAPI(t assert.TestingT, apiKey string) *FakeAPI {
	mux := http.NewServeMux()
	f := &FakeAPI{
		Server: httptest.NewServer(mux),
		Mux:    mux,
		APIKey: apiKey,
		t:      t,
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		assert.Fail(t, "unhandled request; add a handler to the fake api if this is expected",
			"method: %s, path: %s, query params: %s", r.Method, r.URL.Path, r.URL.Query())
		w.WriteHeader(http.StatusNotImplemented)
	})

	return f
}

// Endpoint is the base address to hand to a client under test.
func (f *FakeAPI) Endpoint() string {
	return f.Server.URL + fakeAPIPrefix
}

func (f *FakeAPI) Teardown() {
	f.Server.Close()
}

// HandleFunc registers fn for method+path, where path is relative to the
// endpoint. fn returns the status code and a model to encode as JSON; a
// string model is written verbatim.
func (f *FakeAPI) HandleFunc(method, path string, fn func(r *http.Request) (int, any)) {
	f.Mux.HandleFunc(fakeAPIPrefix+path, func(w http.ResponseWriter, r *http.Request) {
		if !assert.Equal(f.t, method, r.Method, "unexpected method for %s", r.URL.Path) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if r.Header.Get("X-Dune-Api-Key") != f.APIKey {
			f.writeModel(w, http.StatusUnauthorized, map[string]string{
				"error": "invalid API Key",
			})
			return
		}

		status, model := fn(r)
		f.writeModel(w, status, model)
	})
}

func (f *FakeAPI) Handle(method, path string, status int, model any) {
	f.HandleFunc(method, path, func(*http.Request) (int, any) {
		return status, model
	})
}

func (f *FakeAPI) writeModel(w http.ResponseWriter, status int, model any) {
	var body []byte
	if raw, ok := model.(string); ok {
		body = []byte(raw)
	} else {
		var err error
		body, err = json.Marshal(model)
		if !assert.NoError(f.t, err) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(body)
	assert.NoError(f.t, err)
}
