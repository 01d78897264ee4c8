package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docketprep/internal/config"
	"github.com/dgallion1/docketprep/internal/corpus"
)

var (
	buildRoot        string
	buildOutput      string
	buildConcurrency int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract page records from a corpus directory",
	Long: `Build walks the corpus root, splits every document into pages and writes
the aggregated record collection as one JSON artifact. Unreadable files are
skipped and reported; the batch always completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildRoot != "" {
			cfg.Root = buildRoot
		}
		if buildOutput != "" {
			cfg.Output = buildOutput
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency = buildConcurrency
		}
		if cfg.Root == "" {
			return fmt.Errorf("corpus root is required (--root or config)")
		}
		log := newLogger(cfg)

		proc := corpus.NewProcessor(cfg, log)
		res, err := proc.Run(cmd.Context())
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(res.Records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Output, err)
		}

		FormatRunSummary(cmd.OutOrStdout(), res, cfg.Output)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildRoot, "root", "r", "", "Corpus root directory")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output JSON artifact path")
	buildCmd.Flags().IntVarP(&buildConcurrency, "concurrency", "c", config.Default().Concurrency, "Concurrent files processed at once")
	rootCmd.AddCommand(buildCmd)
}
