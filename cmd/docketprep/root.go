package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docketprep/internal/config"
	"github.com/dgallion1/docketprep/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docketprep",
	Short: "Prepare court document corpora for Meilisearch",
	Long: `Docketprep walks a corpus of court filings, splits each document into
pages on the stamped "Case ... Page n of m" header lines, extracts docket
metadata, and emits flat JSON records ready for import into a Meilisearch
index. Search itself stays on the engine's side.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docketprep %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger builds the run logger from config. Logs go to stderr so stdout
// stays free for command output.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
