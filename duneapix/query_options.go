package duneapix

import (
	"encoding/json"
	"fmt"
	"time"
)

// isoTimeLayout matches the ISO-8601 form the API expects for date
// parameters: UTC with millisecond precision.
const isoTimeLayout = "2006-01-02T15:04:05.000Z"

type ExecuteOptions struct {
	QueryID         int64
	QueryParameters map[string]interface{}
}

type CancelOptions struct {
	ExecutionID string
}

type StatusOptions struct {
	ExecutionID string
}

type ResultsOptions struct {
	// ID is either a numeric query id or an execution id.
	ID string

	// Params are ignored when ID is an execution id.
	Params map[string]interface{}

	Limit  int
	Offset int
}

type executeRequestJson struct {
	QueryParameters map[string]interface{} `json:"query_parameters,omitempty"`
}

// encodeToJson returns nil when there is nothing to send, in which case the
// request goes out without a body.
func (o *ExecuteOptions) encodeToJson() (json.RawMessage, error) {
	if len(o.QueryParameters) == 0 {
		return nil, nil
	}

	params := make(map[string]interface{}, len(o.QueryParameters))
	for k, v := range o.QueryParameters {
		params[k] = normalizeParamValue(v)
	}

	return json.Marshal(executeRequestJson{
		QueryParameters: params,
	})
}

func normalizeParamValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case time.Time:
		return tv.UTC().Format(isoTimeLayout)
	case *time.Time:
		if tv == nil {
			return nil
		}
		return tv.UTC().Format(isoTimeLayout)
	}
	return v
}

func formatParamValue(v interface{}) string {
	switch tv := normalizeParamValue(v).(type) {
	case nil:
		return ""
	case string:
		return tv
	default:
		return fmt.Sprint(tv)
	}
}
