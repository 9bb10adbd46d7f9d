package duneapix

import "encoding/json"

// errorDetailJson is the object form of the error field, sent alongside the
// state of a failed execution.
type errorDetailJson struct {
	Type     string          `json:"type"`
	Message  string          `json:"message"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// errorResponseJson holds the error field, which is either a bare string
// (request rejected) or an errorDetailJson (execution failed).
type errorResponseJson struct {
	Error json.RawMessage `json:"error,omitempty"`
}

func (e errorResponseJson) errorDetail() *errorDetailJson {
	if len(e.Error) == 0 || string(e.Error) == "null" {
		return nil
	}

	var msg string
	if err := json.Unmarshal(e.Error, &msg); err == nil {
		return &errorDetailJson{Message: msg}
	}

	var detail errorDetailJson
	if err := json.Unmarshal(e.Error, &detail); err == nil {
		return &detail
	}

	return &errorDetailJson{Message: string(e.Error)}
}

func (e errorResponseJson) errorMessage() string {
	detail := e.errorDetail()
	if detail == nil {
		return ""
	}
	if detail.Message == "" {
		return detail.Type
	}
	return detail.Message
}

type executeQueryJson struct {
	errorResponseJson
	ExecutionID string         `json:"execution_id"`
	State       ExecutionState `json:"state"`
}

// errorMessage only reports a rejected request; an error next to an
// execution identity describes the execution instead.
func (j *executeQueryJson) errorMessage() string {
	if j.ExecutionID != "" || j.State != "" {
		return ""
	}
	return j.errorResponseJson.errorMessage()
}

type cancelQueryJson struct {
	errorResponseJson
	Success bool `json:"success"`
}

type resultMetadataJson struct {
	ColumnNames         []string `json:"column_names"`
	ResultSetBytes      int64    `json:"result_set_bytes"`
	TotalRowCount       int64    `json:"total_row_count"`
	RowCount            int64    `json:"row_count"`
	DatapointCount      int64    `json:"datapoint_count"`
	PendingTimeMillis   int64    `json:"pending_time_millis"`
	ExecutionTimeMillis int64    `json:"execution_time_millis"`
}

type executionStatusJson struct {
	errorResponseJson
	ExecutionID        string              `json:"execution_id"`
	QueryID            int64               `json:"query_id"`
	State              ExecutionState      `json:"state"`
	SubmittedAt        string              `json:"submitted_at,omitempty"`
	ExpiresAt          string              `json:"expires_at,omitempty"`
	ExecutionStartedAt string              `json:"execution_started_at,omitempty"`
	ExecutionEndedAt   string              `json:"execution_ended_at,omitempty"`
	QueuePosition      *int                `json:"queue_position,omitempty"`
	ResultMetadata     *resultMetadataJson `json:"result_metadata,omitempty"`
}

func (j *executionStatusJson) errorMessage() string {
	if j.ExecutionID != "" || j.State != "" {
		return ""
	}
	return j.errorResponseJson.errorMessage()
}

type executionResultDataJson struct {
	Rows     []json.RawMessage   `json:"rows"`
	Metadata *resultMetadataJson `json:"metadata,omitempty"`
}

type executionResultJson struct {
	executionStatusJson
	Result     *executionResultDataJson `json:"result,omitempty"`
	NextOffset *int64                   `json:"next_offset,omitempty"`
	NextURI    string                   `json:"next_uri,omitempty"`
}
