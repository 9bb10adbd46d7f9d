package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dunequery/dunecorex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keyAPIKey   = "api-key"
	keyEndpoint = "endpoint"
	keyVerbose  = "verbose"
)

// app is the state shared by every sub-command once flags and config have
// been resolved.
type app struct {
	v          *viper.Viper
	configFile string
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "dunectl",
		Short: "Run and inspect Dune analytics queries",
		Long: `dunectl submits stored Dune queries for execution, checks on running
executions, cancels them and fetches their results. Output is JSON.

The API key is read from --api-key, the DUNE_API_KEY environment variable or
the api-key entry of a config file, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyAPIKey, "", "Dune API key")
	flags.String(keyEndpoint, "", "API base address (defaults to "+dunecorex.DefaultEndpoint+")")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging")
	flags.StringVar(&a.configFile, "config", "", "config file (defaults to ~/.dunectl/config.yaml or ./config.yaml)")

	for _, name := range []string{keyAPIKey, keyEndpoint, keyVerbose} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newExecuteCommand(a),
		newStatusCommand(a),
		newResultsCommand(a),
		newCancelCommand(a),
	)

	return rootCmd
}

func (a *app) setup() error {
	err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.v.GetBool(keyVerbose) {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewDevelopment(
			zap.IncreaseLevel(zapcore.InfoLevel))
	}
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	return nil
}

func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("DUNE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", a.configFile)
		}
		return nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(homeDir, ".dunectl"))
	}
	a.v.AddConfigPath(".")
	a.v.SetConfigName("config")
	a.v.SetConfigType("yaml")

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	return nil
}

func (a *app) client() (*dunecorex.QueryClient, error) {
	client, err := dunecorex.NewQueryClient(a.v.GetString(keyAPIKey), &dunecorex.QueryClientOptions{
		Logger:    a.logger.Named("client"),
		Endpoint:  a.v.GetString(keyEndpoint),
		UserAgent: "dunectl",
	})
	if err != nil {
		return nil, errors.Wrap(err, "set --api-key or DUNE_API_KEY")
	}

	return client, nil
}
