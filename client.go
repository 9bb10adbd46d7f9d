package dunecorex

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dunequery/dunecorex/duneapix"
	"github.com/dunequery/dunecorex/zaputils"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const DefaultEndpoint = duneapix.DefaultEndpoint

type QueryClientOptions struct {
	Logger *zap.Logger

	// Transport defaults to http.DefaultTransport. Any request timeout has to
	// come from here or from the context passed to each call.
	Transport http.RoundTripper

	Endpoint  string
	UserAgent string
}

// QueryClient wraps the four execution endpoints of the Dune API. It holds
// only immutable configuration and is safe for concurrent use. Each call
// issues exactly one HTTP request; nothing is retried or polled.
type QueryClient struct {
	logger    *zap.Logger
	transport http.RoundTripper
	endpoint  string
	userAgent string
	apiKey    string
}

func NewQueryClient(apiKey string, opts *QueryClientOptions) (*QueryClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if opts == nil {
		opts = &QueryClientOptions{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	endpoint := strings.TrimSuffix(opts.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("dunecorex/%s", buildVersion)
	}

	logger.Debug("created query client",
		zap.String("endpoint", endpoint),
		zap.String("userAgent", userAgent),
		zaputils.RedactedKey("apiKey", apiKey))

	return &QueryClient{
		logger:    logger,
		transport: opts.Transport,
		endpoint:  endpoint,
		userAgent: userAgent,
		apiKey:    apiKey,
	}, nil
}

func (c *QueryClient) Endpoint() string {
	return c.endpoint
}

func (c *QueryClient) api() duneapix.API {
	return duneapix.API{
		Logger:    c.logger,
		Transport: c.transport,
		UserAgent: c.userAgent,
		Endpoint:  c.endpoint,
		APIKey:    c.apiKey,
	}
}

func orchestrateOp[RespT any](
	ctx context.Context,
	c *QueryClient,
	opName, method string,
	attribs []attribute.KeyValue,
	fn func(ctx context.Context, api duneapix.API) (RespT, error),
) (RespT, error) {
	ctx, op := beginOp(ctx, c.endpoint, opName, method, attribs...)
	res, err := fn(ctx, c.api())
	op.End(ctx, err)
	return res, err
}

// Execute starts a run of a stored query.
func (c *QueryClient) Execute(ctx context.Context, queryID int64, opts *ExecuteOptions) (*ExecuteQuery, error) {
	if opts == nil {
		opts = &ExecuteOptions{}
	}

	res, err := orchestrateOp(ctx, c, "execute", "POST",
		[]attribute.KeyValue{attribute.Int64("dune.query_id", queryID)},
		func(ctx context.Context, api duneapix.API) (*ExecuteQuery, error) {
			return api.Execute(ctx, &duneapix.ExecuteOptions{
				QueryID:         queryID,
				QueryParameters: opts.QueryParameters,
			})
		})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("query execution submitted",
		zaputils.QueryID("queryId", queryID),
		zaputils.ExecutionID("executionId", res.ExecutionID),
		zaputils.State("state", res.State.String()))

	return res, nil
}

// Cancel asks the API to stop an in-flight execution.
func (c *QueryClient) Cancel(ctx context.Context, executionID string) (*CancelQuery, error) {
	return orchestrateOp(ctx, c, "cancel", "POST",
		[]attribute.KeyValue{attribute.String("dune.execution_id", executionID)},
		func(ctx context.Context, api duneapix.API) (*CancelQuery, error) {
			return api.Cancel(ctx, &duneapix.CancelOptions{
				ExecutionID: executionID,
			})
		})
}

// Status returns the current state of an execution. It does not wait for the
// execution to reach a terminal state.
func (c *QueryClient) Status(ctx context.Context, executionID string) (*ExecutionStatus, error) {
	return orchestrateOp(ctx, c, "status", "GET",
		[]attribute.KeyValue{attribute.String("dune.execution_id", executionID)},
		func(ctx context.Context, api duneapix.API) (*ExecutionStatus, error) {
			return api.Status(ctx, &duneapix.StatusOptions{
				ExecutionID: executionID,
			})
		})
}

// Results fetches rows either for the latest run of a query (numeric id) or
// for a specific execution (any other id).
func (c *QueryClient) Results(ctx context.Context, id string, opts *ResultsOptions) (*ExecutionResult, error) {
	if opts == nil {
		opts = &ResultsOptions{}
	}

	return orchestrateOp(ctx, c, "results", "GET",
		[]attribute.KeyValue{
			attribute.String("dune.id", id),
			attribute.Bool("dune.by_query_id", duneapix.IsQueryID(id)),
		},
		func(ctx context.Context, api duneapix.API) (*ExecutionResult, error) {
			return api.Results(ctx, &duneapix.ResultsOptions{
				ID:     id,
				Params: opts.Params,
				Limit:  opts.Limit,
				Offset: opts.Offset,
			})
		})
}
