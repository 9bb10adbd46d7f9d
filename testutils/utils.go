package testutils

import (
	"flag"
	"log"
	"net/http"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/dunequery/dunecorex/contrib/leakcheck"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var TestOpts TestOptions

type TestOptions struct {
	LongTest bool
	APIKey   string
	Endpoint string
	RunName  string
}

func envFlagString(envName, name, value, usage string) *string {
	envValue := os.Getenv(envName)
	if envValue != "" {
		value = envValue
	}
	return flag.String(name, value, usage)
}

var apiKey = envFlagString("DUNE_API_KEY", "apikey", "",
	"The API key to run live tests with")
var endpoint = envFlagString("DUNE_ENDPOINT", "endpoint", "",
	"Overrides the API endpoint used by live tests")

func SetupTests(m *testing.M) {
	initialGoroutineCount := runtime.NumGoroutine()
	flag.Parse()

	if *apiKey != "" && !testing.Short() {
		TestOpts.LongTest = true
		TestOpts.APIKey = *apiKey
		TestOpts.Endpoint = *endpoint
	}

	TestOpts.RunName = strings.ReplaceAll(uuid.NewString(), "-", "")[0:8]

	leakcheck.EnableAll()

	result := m.Run()

	// The default transport keeps idle connections (and their goroutines)
	// around after live tests.
	http.DefaultClient.CloseIdleConnections()

	if !leakcheck.ReportAll(initialGoroutineCount) {
		log.Printf("leak check failed")
		result = 1
	}

	os.Exit(result)
}

func SkipIfShortTest(t *testing.T) {
	if !TestOpts.LongTest {
		t.Skipf("skipping long test")
	}
}

func MakeTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	return logger
}
