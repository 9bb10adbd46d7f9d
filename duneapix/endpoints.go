package duneapix

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/google/go-querystring/query"
)

const DefaultEndpoint = "https://api.dune.com/api/v1"

// queryIDPattern decides whether a results id addresses a stored query or a
// single execution. A purely numeric execution id would be misrouted here.
var queryIDPattern = regexp.MustCompile(`^\d+$`)

func IsQueryID(id string) bool {
	return queryIDPattern.MatchString(id)
}

func ExecutePath(queryID int64) string {
	return "/query/" + strconv.FormatInt(queryID, 10) + "/execute"
}

func CancelPath(executionID string) string {
	return "/execution/" + url.PathEscape(executionID) + "/cancel"
}

func StatusPath(executionID string) string {
	return "/execution/" + url.PathEscape(executionID) + "/status"
}

type resultsPagingQuery struct {
	Limit  int `url:"limit,omitempty"`
	Offset int `url:"offset,omitempty"`
}

// ResultsPath returns the path and query string for a results fetch. Params
// are only sent when id is a query id, since a specific execution cannot be
// re-parameterized.
func ResultsPath(id string, opts *ResultsOptions) (string, error) {
	if opts == nil {
		opts = &ResultsOptions{}
	}

	values, err := query.Values(resultsPagingQuery{
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
	if err != nil {
		return "", err
	}

	var path string
	if IsQueryID(id) {
		path = "/query/" + id + "/results"
		for k, v := range opts.Params {
			values.Set("params."+k, formatParamValue(v))
		}
	} else {
		path = "/execution/" + url.PathEscape(id) + "/results"
	}

	if len(values) == 0 {
		return path, nil
	}

	return fmt.Sprintf("%s?%s", path, values.Encode()), nil
}
