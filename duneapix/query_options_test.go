package duneapix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeExecuteOptions(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		opts := &ExecuteOptions{QueryID: 1258228}

		optsJson, err := opts.encodeToJson()
		require.NoError(t, err)
		assert.Nil(t, optsJson)
	})

	t.Run("parameters", func(t *testing.T) {
		opts := &ExecuteOptions{
			QueryID: 1258228,
			QueryParameters: map[string]interface{}{
				"wallet": "0xabc",
				"limit":  10,
			},
		}

		optsJson, err := opts.encodeToJson()
		require.NoError(t, err)
		assert.JSONEq(t, `{"query_parameters":{"wallet":"0xabc","limit":10}}`, string(optsJson))
	})

	t.Run("dates", func(t *testing.T) {
		since := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		opts := &ExecuteOptions{
			QueryParameters: map[string]interface{}{
				"since": since,
				"until": &since,
			},
		}

		optsJson, err := opts.encodeToJson()
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"query_parameters":{"since":"2024-01-02T03:04:05.000Z","until":"2024-01-02T03:04:05.000Z"}}`,
			string(optsJson))
	})
}

func TestFormatParamValue(t *testing.T) {
	var nilTime *time.Time

	assert.Equal(t, "text", formatParamValue("text"))
	assert.Equal(t, "12", formatParamValue(12))
	assert.Equal(t, "1.5", formatParamValue(1.5))
	assert.Equal(t, "true", formatParamValue(true))
	assert.Equal(t, "", formatParamValue(nilTime))
	assert.Equal(t, "2020-02-29T00:00:00.000Z",
		formatParamValue(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)))
}
