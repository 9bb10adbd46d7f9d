package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dunequery/dunecorex"
	"github.com/dunequery/dunecorex/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testutils.SetupTests(m)
}

// writeConfig gives each test its own config file so that a config in the
// user's home directory never leaks in.
func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestExecuteCommand(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "cli-key")
	defer fake.Teardown()

	fake.HandleFunc("POST", "/query/1258228/execute", func(r *http.Request) (int, any) {
		var body map[string]map[string]interface{}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			assert.Equal(t, "0xabc", body["query_parameters"]["wallet"])
			assert.Equal(t, "2024-01-01T00:00:00.000Z", body["query_parameters"]["since"])
		}
		return http.StatusOK, map[string]string{
			"execution_id": "01HKZ",
			"state":        "QUERY_STATE_PENDING",
		}
	})

	out, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "cli-key",
		"--endpoint", fake.Endpoint(),
		"execute", "1258228",
		"--param", "wallet=0xabc",
		"-p", "since=2024-01-01T00:00:00Z")
	require.NoError(t, err)

	var view executeView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "01HKZ", view.ExecutionID)
	assert.Equal(t, "QUERY_STATE_PENDING", view.State)
}

func TestExecuteCommandBadQueryID(t *testing.T) {
	_, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "cli-key",
		"execute", "not-a-number")
	assert.ErrorContains(t, err, "not a number")
}

func TestStatusCommandFromConfigFile(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "config-key")
	defer fake.Teardown()

	fake.Handle("GET", "/execution/01HKZ/status", http.StatusOK, map[string]any{
		"execution_id":   "01HKZ",
		"query_id":       1258228,
		"state":          "QUERY_STATE_PENDING",
		"submitted_at":   "2024-01-12T21:34:37Z",
		"queue_position": 2,
	})

	config := writeConfig(t, "api-key: config-key\nendpoint: "+fake.Endpoint()+"\n")

	out, err := runCommand(t, "--config", config, "status", "01HKZ")
	require.NoError(t, err)

	var view statusView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "01HKZ", view.ExecutionID)
	assert.Equal(t, "QUERY_STATE_PENDING", view.State)
	assert.False(t, view.Terminal)
	require.NotNil(t, view.QueuePosition)
	assert.Equal(t, 2, *view.QueuePosition)
}

func TestStatusCommandFailedExecution(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "cli-key")
	defer fake.Teardown()

	fake.Handle("GET", "/execution/01HKZ/status", http.StatusOK, map[string]any{
		"execution_id":       "01HKZ",
		"query_id":           1258228,
		"state":              "QUERY_STATE_FAILED",
		"submitted_at":       "2024-01-12T21:34:37Z",
		"execution_ended_at": "2024-01-12T21:34:38Z",
		"error": map[string]any{
			"type":    "FAILED_TYPE_EXECUTION_FAILED",
			"message": "line 1: syntax error",
		},
	})

	out, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "cli-key",
		"--endpoint", fake.Endpoint(),
		"status", "01HKZ")
	require.NoError(t, err)

	var view statusView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "QUERY_STATE_FAILED", view.State)
	assert.True(t, view.Terminal)
	require.NotNil(t, view.Error)
	assert.Equal(t, "FAILED_TYPE_EXECUTION_FAILED", view.Error.Type)
	assert.Equal(t, "line 1: syntax error", view.Error.Message)
}

func TestResultsCommand(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "cli-key")
	defer fake.Teardown()

	fake.HandleFunc("GET", "/query/3224138/results", func(r *http.Request) (int, any) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "farcaster", r.URL.Query().Get("params.network"))
		return http.StatusOK, testutils.LeaderboardResults
	})

	out, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "cli-key",
		"--endpoint", fake.Endpoint(),
		"results", "3224138",
		"--limit", "2",
		"--param", "network=farcaster")
	require.NoError(t, err)

	var view resultsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "QUERY_STATE_COMPLETED", view.State)
	assert.True(t, view.Terminal)
	require.Len(t, view.Rows, 4)
	require.NotNil(t, view.Metadata)
	assert.Equal(t, []string{"rank", "username", "followers"}, view.Metadata.ColumnNames)
	assert.Equal(t, "18.272s", view.Metadata.ExecutionTime)

	var first testutils.LeaderboardRow
	require.NoError(t, json.Unmarshal(view.Rows[0], &first))
	assert.Equal(t, "dwr.eth", first.Username)
}

func TestCancelCommand(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "cli-key")
	defer fake.Teardown()

	fake.Handle("POST", "/execution/01HKZ/cancel", http.StatusOK, map[string]bool{
		"success": true,
	})

	out, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "cli-key",
		"--endpoint", fake.Endpoint(),
		"cancel", "01HKZ")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, out)
}

func TestCommandWithoutKey(t *testing.T) {
	t.Setenv("DUNE_API_KEY", "")

	_, err := runCommand(t, "--config", writeConfig(t, ""), "status", "01HKZ")
	require.ErrorIs(t, err, dunecorex.ErrMissingAPIKey)
	assert.ErrorContains(t, err, "DUNE_API_KEY")
}

func TestCommandServerError(t *testing.T) {
	fake := testutils.NewFakeAPI(t, "right-key")
	defer fake.Teardown()

	fake.Handle("GET", "/execution/01HKZ/status", http.StatusOK, `{}`)

	_, err := runCommand(t,
		"--config", writeConfig(t, ""),
		"--api-key", "wrong-key",
		"--endpoint", fake.Endpoint(),
		"status", "01HKZ")
	require.ErrorIs(t, err, dunecorex.ErrServerError)
	assert.ErrorContains(t, err, "invalid API Key")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := runCommand(t,
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--api-key", "cli-key",
		"status", "01HKZ")
	assert.ErrorContains(t, err, "failed to read config file")
}
