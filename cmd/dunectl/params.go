package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// parseParams turns repeated k=v flags into query parameters. Values that
// parse as RFC 3339 timestamps are passed on as time.Time so they get the
// API's date encoding; everything else is sent as a string.
func parseParams(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf("invalid parameter %q, expected key=value", pair)
		}

		if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
			params[key] = ts
			continue
		}

		params[key] = value
	}

	return params, nil
}
