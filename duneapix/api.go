package duneapix

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dunequery/dunecorex/dunehttpx"
	"github.com/dunequery/dunecorex/zaputils"
	"go.uber.org/zap"
)

type API struct {
	Logger    *zap.Logger
	Transport http.RoundTripper
	UserAgent string
	Endpoint  string
	APIKey    string
}

func (h API) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func (h API) endpoint() string {
	if h.Endpoint == "" {
		return DefaultEndpoint
	}
	return h.Endpoint
}

func (h API) NewRequest(
	ctx context.Context,
	method, path, contentType string,
	body io.Reader,
) (*http.Request, error) {
	return dunehttpx.RequestBuilder{
		UserAgent: h.UserAgent,
		Endpoint:  h.endpoint(),
		APIKey:    h.APIKey,
	}.NewRequest(ctx, method, path, contentType, body)
}

func (h API) Do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := h.NewRequest(ctx, method, path, contentType, body)
	if err != nil {
		return nil, err
	}

	h.logger().Debug("sending dune api request",
		zap.String("method", method),
		zap.String("path", path),
		zaputils.RedactedKey("apiKey", h.APIKey))

	return dunehttpx.Client{
		Transport: h.Transport,
	}.Do(req)
}

type apiResponseJson interface {
	errorMessage() string
}

type resultConverter[ResT any] interface {
	apiResponseJson
	toResult() (*ResT, error)
}

// readResponse decodes resp into the wire type JsonT and converts it. The
// status code is only reported, never used to decide success: a body that
// decodes and carries no request-level error message is a result.
func readResponse[ResT any, JsonT any, JsonPtrT interface {
	*JsonT
	resultConverter[ResT]
}](h API, resp *http.Response, path string) (*ResT, error) {
	respJson, body, err := dunehttpx.ReadJsonAndClose[JsonT](resp.Body)
	if errors.Is(err, dunehttpx.ErrConnectError) {
		h.logger().Debug("failed to read dune api response body",
			zap.String("path", path),
			zap.Int("statusCode", resp.StatusCode),
			zap.Error(err))

		return nil, err
	} else if err != nil {
		h.logger().Debug("failed to decode dune api response",
			zap.String("path", path),
			zap.Int("statusCode", resp.StatusCode),
			zap.Int("bodyLen", len(body)),
			zap.Error(err))

		return nil, &Error{
			Cause:      ErrUnexpectedResponse,
			Inner:      err,
			StatusCode: resp.StatusCode,
			Endpoint:   h.endpoint(),
			Path:       path,
		}
	}

	jsonPtr := JsonPtrT(&respJson)
	if msg := jsonPtr.errorMessage(); msg != "" {
		return nil, &Error{
			Cause:      ErrServerError,
			StatusCode: resp.StatusCode,
			Endpoint:   h.endpoint(),
			Path:       path,
			Message:    msg,
		}
	}

	res, err := jsonPtr.toResult()
	if err != nil {
		h.logger().Debug("dune api response had an unexpected shape",
			zap.String("path", path),
			zap.Int("statusCode", resp.StatusCode),
			zap.Error(err))

		return nil, &Error{
			Cause:      ErrUnexpectedResponse,
			Inner:      err,
			StatusCode: resp.StatusCode,
			Endpoint:   h.endpoint(),
			Path:       path,
		}
	}

	return res, nil
}

func (h API) Execute(ctx context.Context, opts *ExecuteOptions) (*ExecuteQuery, error) {
	reqBytes, err := opts.encodeToJson()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	var contentType string
	if reqBytes != nil {
		body = bytes.NewReader(reqBytes)
		contentType = "application/json"
	}

	path := ExecutePath(opts.QueryID)
	resp, err := h.Do(ctx, "POST", path, contentType, body)
	if err != nil {
		return nil, err
	}

	return readResponse[ExecuteQuery, executeQueryJson](h, resp, path)
}

func (h API) Cancel(ctx context.Context, opts *CancelOptions) (*CancelQuery, error) {
	if opts.ExecutionID == "" {
		return nil, invalidArgError{Name: "execution id", Reason: "must not be empty"}
	}

	path := CancelPath(opts.ExecutionID)
	resp, err := h.Do(ctx, "POST", path, "", nil)
	if err != nil {
		return nil, err
	}

	return readResponse[CancelQuery, cancelQueryJson](h, resp, path)
}

func (h API) Status(ctx context.Context, opts *StatusOptions) (*ExecutionStatus, error) {
	if opts.ExecutionID == "" {
		return nil, invalidArgError{Name: "execution id", Reason: "must not be empty"}
	}

	path := StatusPath(opts.ExecutionID)
	resp, err := h.Do(ctx, "GET", path, "", nil)
	if err != nil {
		return nil, err
	}

	return readResponse[ExecutionStatus, executionStatusJson](h, resp, path)
}

func (h API) Results(ctx context.Context, opts *ResultsOptions) (*ExecutionResult, error) {
	if opts.ID == "" {
		return nil, invalidArgError{Name: "id", Reason: "must not be empty"}
	}

	if len(opts.Params) > 0 && !IsQueryID(opts.ID) {
		h.logger().Debug("ignoring query parameters for an execution results fetch",
			zaputils.ExecutionID("executionId", opts.ID),
			zap.Int("numParams", len(opts.Params)))
	}

	path, err := ResultsPath(opts.ID, opts)
	if err != nil {
		return nil, err
	}

	resp, err := h.Do(ctx, "GET", path, "", nil)
	if err != nil {
		return nil, err
	}

	return readResponse[ExecutionResult, executionResultJson](h, resp, path)
}
