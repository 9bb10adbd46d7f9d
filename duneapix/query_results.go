package duneapix

import (
	"encoding/json"
	"fmt"
	"time"
)

type ExecuteQuery struct {
	ExecutionID string
	State       ExecutionState
}

type CancelQuery struct {
	Success bool
}

type ResultMetadata struct {
	ColumnNames    []string
	ResultSetBytes int64
	TotalRowCount  int64
	RowCount       int64
	DatapointCount int64
	PendingTime    time.Duration
	ExecutionTime  time.Duration
}

// ExecutionError describes why an execution failed. Metadata is passed
// through as the API sent it (for example the line and column of a syntax
// error).
type ExecutionError struct {
	Type     string
	Message  string
	Metadata json.RawMessage
}

// ExecutionStatus fields that are pointers are only present once the
// execution reaches the matching point in its lifecycle.
type ExecutionStatus struct {
	ExecutionID        string
	QueryID            int64
	State              ExecutionState
	SubmittedAt        time.Time
	ExpiresAt          *time.Time
	ExecutionStartedAt *time.Time
	ExecutionEndedAt   *time.Time
	QueuePosition      *int
	ResultMetadata     *ResultMetadata
	Error              *ExecutionError
}

type ExecutionResultData struct {
	Rows     []json.RawMessage
	Metadata ResultMetadata
}

// ExecutionResult carries Result only when State.HasRows() is true.
type ExecutionResult struct {
	ExecutionStatus
	Result     *ExecutionResultData
	NextOffset *int64
	NextURI    string
}

// DecodeRows unmarshals each opaque row into T.
func DecodeRows[T any](res *ExecutionResult) ([]T, error) {
	if res == nil || res.Result == nil {
		return nil, nil
	}

	rows := make([]T, len(res.Result.Rows))
	for rowIdx, raw := range res.Result.Rows {
		err := json.Unmarshal(raw, &rows[rowIdx])
		if err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", rowIdx, err)
		}
	}

	return rows, nil
}

type shapeError struct {
	Field  string
	Reason string
}

func (e shapeError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Reason)
}

func checkState(state ExecutionState) error {
	if !state.IsValid() {
		return shapeError{Field: "state", Reason: fmt.Sprintf("has unknown value %q", state)}
	}
	return nil
}

func parseOptionalTime(field, val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return nil, shapeError{Field: field, Reason: "is not an RFC 3339 timestamp"}
	}

	return &t, nil
}

func (j *resultMetadataJson) toMetadata() ResultMetadata {
	return ResultMetadata{
		ColumnNames:    j.ColumnNames,
		ResultSetBytes: j.ResultSetBytes,
		TotalRowCount:  j.TotalRowCount,
		RowCount:       j.RowCount,
		DatapointCount: j.DatapointCount,
		PendingTime:    time.Duration(j.PendingTimeMillis) * time.Millisecond,
		ExecutionTime:  time.Duration(j.ExecutionTimeMillis) * time.Millisecond,
	}
}

func (j *executeQueryJson) toResult() (*ExecuteQuery, error) {
	if j.ExecutionID == "" {
		return nil, shapeError{Field: "execution_id", Reason: "is missing"}
	}
	if err := checkState(j.State); err != nil {
		return nil, err
	}

	return &ExecuteQuery{
		ExecutionID: j.ExecutionID,
		State:       j.State,
	}, nil
}

func (j *cancelQueryJson) toResult() (*CancelQuery, error) {
	return &CancelQuery{
		Success: j.Success,
	}, nil
}

func (j *executionStatusJson) toResult() (*ExecutionStatus, error) {
	if j.ExecutionID == "" {
		return nil, shapeError{Field: "execution_id", Reason: "is missing"}
	}
	if err := checkState(j.State); err != nil {
		return nil, err
	}

	status := &ExecutionStatus{
		ExecutionID:   j.ExecutionID,
		QueryID:       j.QueryID,
		State:         j.State,
		QueuePosition: j.QueuePosition,
	}

	submittedAt, err := parseOptionalTime("submitted_at", j.SubmittedAt)
	if err != nil {
		return nil, err
	}
	if submittedAt != nil {
		status.SubmittedAt = *submittedAt
	}

	status.ExpiresAt, err = parseOptionalTime("expires_at", j.ExpiresAt)
	if err != nil {
		return nil, err
	}

	status.ExecutionStartedAt, err = parseOptionalTime("execution_started_at", j.ExecutionStartedAt)
	if err != nil {
		return nil, err
	}

	status.ExecutionEndedAt, err = parseOptionalTime("execution_ended_at", j.ExecutionEndedAt)
	if err != nil {
		return nil, err
	}

	if j.ResultMetadata != nil {
		md := j.ResultMetadata.toMetadata()
		status.ResultMetadata = &md
	}

	if detail := j.errorDetail(); detail != nil {
		status.Error = &ExecutionError{
			Type:     detail.Type,
			Message:  detail.Message,
			Metadata: detail.Metadata,
		}
	}

	return status, nil
}

func (j *executionResultJson) toResult() (*ExecutionResult, error) {
	status, err := j.executionStatusJson.toResult()
	if err != nil {
		return nil, err
	}

	res := &ExecutionResult{
		ExecutionStatus: *status,
		NextOffset:      j.NextOffset,
		NextURI:         j.NextURI,
	}

	// rows are only meaningful once the execution completed
	if j.State.HasRows() && j.Result != nil {
		data := &ExecutionResultData{
			Rows: j.Result.Rows,
		}
		if j.Result.Metadata != nil {
			data.Metadata = j.Result.Metadata.toMetadata()
		}
		res.Result = data
	}

	return res, nil
}
