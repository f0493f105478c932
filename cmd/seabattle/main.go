// seabattle is a six-by-six sea battle against the computer, played in the
// terminal.
//
// Usage:
//
//	seabattle menu            - Pick play, watch or history interactively
//	seabattle play            - Play against the computer
//	seabattle sim             - Let two computers play each other
//	seabattle list            - List available combatant kinds
//	seabattle history         - Show recorded matches
//	seabattle serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible matches
//	--db <path>          - Set database path (default: ~/.seabattle/history.db)
//	--config <path>      - Read configuration from this YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/registry"
	"github.com/vovakirdan/seabattle/internal/session"
	"github.com/vovakirdan/seabattle/internal/storage"
	"github.com/vovakirdan/seabattle/internal/telemetry"

	// Register the built-in combatant kinds
	_ "github.com/vovakirdan/seabattle/internal/players"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// Loaded by the root command before any subcommand runs.
var (
	appConfig         config.Config
	logger            *log.Logger
	telemetryShutdown func(context.Context) error
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if telemetryShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if shutdownErr := telemetryShutdown(ctx); shutdownErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: telemetry shutdown: %v\n", shutdownErr)
		}
		cancel()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seabattle",
	Short: "Sea Battle - sink the computer's fleet in your terminal",
	Long: `Sea Battle is the classic naval guessing game on a 6x6 grid.

Each side hides ten vessels (one of three cells, two of two, four of one)
that never touch, not even at a corner. Take turns firing; a hit earns
another shot, a miss passes the turn. Sink the whole fleet to win.

Available commands:
  menu     - Interactive picker for the modes below
  play     - Play against the computer
  sim      - Computer vs computer, one match or a batch
  list     - Show the available combatant kinds
  history  - Recorded matches and win totals
  serve    - Start SSH server for remote play

Examples:
  seabattle play
  seabattle play --plain < moves.txt
  seabattle sim --matches 100
  seabattle history --limit 20
  seabattle serve --ssh :2222`,
	PersistentPreRunE: loadApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadApp reads configuration, applies flag overrides and prepares the
// logger and tracing shared by every subcommand.
func loadApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.Enabled = flagDBPath != ""
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(registry.Exists); err != nil {
		return err
	}
	appConfig = cfg

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seabattle",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.SetLevel(level)

	if cfg.Telemetry.Endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.Enabled || telemetry.Enabled() {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			telemetryShutdown = shutdown
			logger.Debug("tracing enabled")
		}
	}
	return nil
}

// quietLogs raises the log level during interactive play so log lines do
// not interleave with the boards, unless --log-level was given.
func quietLogs(cmd *cobra.Command) {
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.WarnLevel)
	}
}

// openStore opens the history database. A failure is reported and play
// continues without history.
func openStore() *storage.Store {
	if !appConfig.Storage.Enabled {
		return nil
	}
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open match history", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// newSetup builds the shared match setup. A nil store disables recording.
func newSetup(cfg config.Config, store *storage.Store) session.Setup {
	s := session.Setup{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}
	if store != nil {
		s.Recorder = store
	}
	return s
}
