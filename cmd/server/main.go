package main

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/translation-portal/internal/api"
	"github.com/skybi/translation-portal/internal/api/portal/session/storage"
	"github.com/skybi/translation-portal/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"os/signal"
	"syscall"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           "translation-portal",
	Short:         "Session-bound web portal for the adaptive translation platform",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "additional .env files to load (override the default .env file)")
}

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("the portal terminated unexpectedly")
	}
}

func run(ctx context.Context) error {
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv(envFiles...)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	configureLogging(cfg)
	log.Debug().Str("config", fmt.Sprintf("%+v", redacted(cfg))).Msg("")

	// Initialize the session storage driver
	log.Info().Str("driver", cfg.SessionDriver).Msg("initializing session storage...")
	sessions, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer sessions.Close()

	// Start up the portal
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up the portal...")
	apis := &api.Service{
		Config:   cfg,
		Sessions: sessions,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	defer func() {
		log.Info().Msg("shutting down the portal...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	select {
	case <-shutdown:
		return nil
	case err := <-apiErrs:
		return fmt.Errorf("the portal raised an unexpected error: %w", err)
	}
}

// configureLogging applies the log level for the configured environment and attaches the optional log file
func configureLogging(cfg *config.Config) {
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfg.LogFile == "" {
		return
	}
	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	output = zerolog.MultiLevelWriter(output, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// redacted returns a copy of the configuration with every credential blanked out
func redacted(cfg *config.Config) config.Config {
	cpy := *cfg
	for _, value := range []*string{&cpy.SecretKey, &cpy.TranslationKey, &cpy.GPTKey, &cpy.PostgresDSN, &cpy.RedisURL} {
		if *value != "" {
			*value = "***"
		}
	}
	return cpy
}
