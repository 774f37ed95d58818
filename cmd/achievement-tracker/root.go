package main

import (
	"fmt"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tupyy/achievement-tracker/internal/config"
)

const envPrefix = "TRACKER"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	var configFile string

	root := &cobra.Command{
		Use:           "achievement-tracker",
		Short:         "Track game achievements and curate collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, _ []string) error {
				return loadConfigFile(cmd, configFile)
			},
			func(_ *cobra.Command, _ []string) error {
				return setupLogger(cfg.LogFormat, cfg.LogLevel)
			},
			func(_ *cobra.Command, _ []string) error {
				return cfg.Storage.ResolveDataFolder()
			},
		),
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = zap.L().Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a yaml, json or toml file with flag values")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	registerLibraryFlags(flags, cfg)
	registerUpstreamFlags(flags, cfg)
	registerStorageFlags(flags, cfg)
	registerTracingFlags(flags, cfg)

	root.AddCommand(
		NewServeCommand(cfg),
		NewLibraryCommand(cfg),
		NewCredentialsCommand(cfg),
		NewCollectionsCommand(cfg),
	)

	return root
}

func registerLibraryFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.IntVar(&cfg.Library.NumWorkers, "workers", cfg.Library.NumWorkers, "Concurrent upstream fetches during aggregation")
	flags.DurationVar(&cfg.Library.FreshnessWindow, "freshness-window", cfg.Library.FreshnessWindow, "Maximum age of the cached library")
	flags.StringVar(&cfg.Library.Locale, "locale", cfg.Library.Locale, "Locale used to sort games by name")
}

func registerUpstreamFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.Upstream.URL, "upstream-url", cfg.Upstream.URL, "Base URL of the backend proxy")
	flags.DurationVar(&cfg.Upstream.Timeout, "upstream-timeout", cfg.Upstream.Timeout, "Timeout of one upstream request")
	flags.UintVar(&cfg.Upstream.MaxRetries, "upstream-max-retries", cfg.Upstream.MaxRetries, "Retries of a failed upstream request")
	flags.StringVar(&cfg.Upstream.TokenFile, "upstream-token-file", cfg.Upstream.TokenFile, "File holding a JWT sent to the proxy as bearer token")
}

func registerStorageFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.StringVar(&cfg.Storage.Backend, "storage-backend", cfg.Storage.Backend, "Persistent store: duckdb, redis or memory")
	flags.StringVar(&cfg.Storage.DataFolder, "data-folder", cfg.Storage.DataFolder, "Folder of the DuckDB file (default: <user config dir>/achievement-tracker, \":memory:\" keeps data in memory)")
	flags.StringVar(&cfg.Storage.RedisURL, "redis-url", cfg.Storage.RedisURL, "Redis URL used by the redis backend")
}

func registerTracingFlags(flags *pflag.FlagSet, cfg *config.Configuration) {
	flags.BoolVar(&cfg.Tracing.Enabled, "tracing", cfg.Tracing.Enabled, "Export traces over OTLP/HTTP")
	flags.StringVar(&cfg.Tracing.Endpoint, "tracing-endpoint", cfg.Tracing.Endpoint, "OTLP/HTTP collector URL")
	flags.Float64Var(&cfg.Tracing.SamplingRatio, "tracing-sampling-ratio", cfg.Tracing.SamplingRatio, "Fraction of aggregations traced")
}

// loadConfigFile fills every flag not set on the command line or environment from path.
func loadConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			setErr = fmt.Errorf("invalid value for %q in %s: %w", f.Name, path, err)
		}
	})
	return setErr
}

func setupLogger(format, level string) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
