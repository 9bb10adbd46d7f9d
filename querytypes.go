package dunecorex

import "github.com/dunequery/dunecorex/duneapix"

type ExecutionState = duneapix.ExecutionState

const (
	StatePending          = duneapix.StatePending
	StateExecuting        = duneapix.StateExecuting
	StateFailed           = duneapix.StateFailed
	StateCompleted        = duneapix.StateCompleted
	StateCompletedPartial = duneapix.StateCompletedPartial
	StateCancelled        = duneapix.StateCancelled
	StateExpired          = duneapix.StateExpired
)

type ExecuteQuery = duneapix.ExecuteQuery
type CancelQuery = duneapix.CancelQuery
type ExecutionStatus = duneapix.ExecutionStatus
type ExecutionResult = duneapix.ExecutionResult
type ExecutionResultData = duneapix.ExecutionResultData
type ResultMetadata = duneapix.ResultMetadata
type ExecutionError = duneapix.ExecutionError

// ExecuteOptions holds the optional inputs of an execution.
type ExecuteOptions struct {
	// QueryParameters are sent as the JSON body. time.Time values are sent as
	// ISO-8601 strings.
	QueryParameters map[string]interface{}
}

// ResultsOptions holds the optional inputs of a results fetch.
type ResultsOptions struct {
	// Params are sent as params.<key> query entries, and only when the id
	// being fetched is a numeric query id.
	Params map[string]interface{}

	Limit  int
	Offset int
}

// DecodeRows unmarshals the opaque rows of a completed result into T.
func DecodeRows[T any](res *ExecutionResult) ([]T, error) {
	return duneapix.DecodeRows[T](res)
}
