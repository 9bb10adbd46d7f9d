package zaputils

import (
	"strings"

	"go.uber.org/zap"
)

func QueryID(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

func ExecutionID(key string, val string) zap.Field {
	return zap.String(key, val)
}

func State(key string, val string) zap.Field {
	return zap.String(key, val)
}

// LoggableKey renders an API key with all but its last four characters masked.
type LoggableKey string

func (k LoggableKey) String() string {
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}

	return strings.Repeat("*", len(k)-4) + string(k[len(k)-4:])
}

func RedactedKey(key string, apiKey string) zap.Field {
	return zap.Stringer(key, LoggableKey(apiKey))
}
