package dunehttpx

import (
	"encoding/json"
	"io"
)

// ReadJsonAndClose drains and closes r, then decodes the body into T. The raw
// body is returned as well so callers can attach it to decode errors. A
// failure while reading the body is returned as a ConnectError.
func ReadJsonAndClose[T any](r io.ReadCloser) (T, []byte, error) {
	var resp T

	body, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return resp, nil, ConnectError{Cause: err}
	}

	err = json.Unmarshal(body, &resp)
	if err != nil {
		var emptyResp T
		return emptyResp, body, err
	}

	return resp, body, nil
}
