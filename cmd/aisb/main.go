// Package main provides the CLI entrypoint for the AISB selection site.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aisb-selection/aisb/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aisb",
	Short: "AISB selection site and admin area",
	Long: `aisb serves the public AISB selection site and its admin area.

Running aisb without a subcommand starts the web server.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(slog.LevelInfo)
	},
	RunE: runServe,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogger configures the global slog logger.
func setupLogger(level slog.Level) {
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadConfig reads the environment and reconfigures the logger to the
// configured level.
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.LogLevel)
	return nil
}
