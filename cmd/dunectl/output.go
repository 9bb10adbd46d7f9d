package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dunequery/dunecorex"
)

type executeView struct {
	ExecutionID string `json:"execution_id"`
	State       string `json:"state"`
}

type cancelView struct {
	Success bool `json:"success"`
}

type metadataView struct {
	ColumnNames    []string `json:"column_names"`
	RowCount       int64    `json:"row_count"`
	TotalRowCount  int64    `json:"total_row_count"`
	ResultSetBytes int64    `json:"result_set_bytes"`
	DatapointCount int64    `json:"datapoint_count"`
	PendingTime    string   `json:"pending_time"`
	ExecutionTime  string   `json:"execution_time"`
}

type executionErrorView struct {
	Type     string          `json:"type,omitempty"`
	Message  string          `json:"message"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type statusView struct {
	ExecutionID        string              `json:"execution_id"`
	QueryID            int64               `json:"query_id"`
	State              string              `json:"state"`
	Terminal           bool                `json:"terminal"`
	SubmittedAt        time.Time           `json:"submitted_at"`
	ExpiresAt          *time.Time          `json:"expires_at,omitempty"`
	ExecutionStartedAt *time.Time          `json:"execution_started_at,omitempty"`
	ExecutionEndedAt   *time.Time          `json:"execution_ended_at,omitempty"`
	QueuePosition      *int                `json:"queue_position,omitempty"`
	ResultMetadata     *metadataView       `json:"result_metadata,omitempty"`
	Error              *executionErrorView `json:"error,omitempty"`
}

type resultsView struct {
	statusView
	Rows       []json.RawMessage `json:"rows,omitempty"`
	Metadata   *metadataView     `json:"metadata,omitempty"`
	NextOffset *int64            `json:"next_offset,omitempty"`
	NextURI    string            `json:"next_uri,omitempty"`
}

func newMetadataView(m dunecorex.ResultMetadata) *metadataView {
	return &metadataView{
		ColumnNames:    m.ColumnNames,
		RowCount:       m.RowCount,
		TotalRowCount:  m.TotalRowCount,
		ResultSetBytes: m.ResultSetBytes,
		DatapointCount: m.DatapointCount,
		PendingTime:    m.PendingTime.String(),
		ExecutionTime:  m.ExecutionTime.String(),
	}
}

func newStatusView(s *dunecorex.ExecutionStatus) statusView {
	view := statusView{
		ExecutionID:        s.ExecutionID,
		QueryID:            s.QueryID,
		State:              s.State.String(),
		Terminal:           s.State.IsTerminal(),
		SubmittedAt:        s.SubmittedAt,
		ExpiresAt:          s.ExpiresAt,
		ExecutionStartedAt: s.ExecutionStartedAt,
		ExecutionEndedAt:   s.ExecutionEndedAt,
		QueuePosition:      s.QueuePosition,
	}
	if s.ResultMetadata != nil {
		view.ResultMetadata = newMetadataView(*s.ResultMetadata)
	}
	if s.Error != nil {
		view.Error = &executionErrorView{
			Type:     s.Error.Type,
			Message:  s.Error.Message,
			Metadata: s.Error.Metadata,
		}
	}
	return view
}

func newResultsView(r *dunecorex.ExecutionResult) resultsView {
	view := resultsView{
		statusView: newStatusView(&r.ExecutionStatus),
		NextOffset: r.NextOffset,
		NextURI:    r.NextURI,
	}
	if r.Result != nil {
		view.Rows = r.Result.Rows
		view.Metadata = newMetadataView(r.Result.Metadata)
	}
	return view
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
