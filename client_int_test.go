package dunecorex

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/dunequery/dunecorex/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveClient(t *testing.T) *QueryClient {
	client, err := NewQueryClient(testutils.TestOpts.APIKey, &QueryClientOptions{
		Logger:    testutils.MakeTestLogger(t),
		Endpoint:  testutils.TestOpts.Endpoint,
		UserAgent: "dunecorex-tests/" + testutils.TestOpts.RunName,
	})
	require.NoError(t, err)
	return client
}

func TestIntLatestResults(t *testing.T) {
	testutils.SkipIfShortTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := newLiveClient(t).Results(ctx, strconv.Itoa(testutils.LeaderboardQueryID), nil)
	require.NoError(t, err)
	require.True(t, res.State.HasRows())
	require.NotNil(t, res.Result)

	rows, err := DecodeRows[testutils.LeaderboardRow](res)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.NotEmpty(t, row.Username)
	}
}

func TestIntStatusUnknownExecution(t *testing.T) {
	testutils.SkipIfShortTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := newLiveClient(t).Status(ctx, "01HKZZZZZZZZZZZZZZZZZZZZZZ")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotZero(t, apiErr.StatusCode)
}
