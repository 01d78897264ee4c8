package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docketprep/internal/chunker"
	"github.com/dgallion1/docketprep/internal/meili"
	"github.com/dgallion1/docketprep/internal/record"
)

var (
	pushInput        string
	pushSkipSettings bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Import a records artifact into Meilisearch",
	Long: `Push uploads the records artifact to the configured Meilisearch index in
size-bounded batches, waits for each import task, and finally configures the
index's searchable and filterable attributes for the court-record field set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		input := cfg.Output
		if pushInput != "" {
			input = pushInput
		}
		log := newLogger(cfg)

		records, err := readArtifact(input)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			log.Warn("artifact contains no records, nothing to push", "input", input)
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(),
			time.Duration(cfg.Meili.TimeoutSeconds)*time.Second)
		defer cancel()

		client := meili.NewClient(cfg.Meili.URL, cfg.Meili.APIKey, cfg.Meili.Index)
		defer client.Close()

		// Batches observe the same byte threshold as chunked uploads plus the
		// configured record count, and never fracture a record.
		batches, err := chunker.Partition(records, chunker.Limits{
			MaxBytes:   cfg.Chunk.MaxBytes,
			MaxRecords: cfg.Meili.BatchSize,
		})
		if err != nil {
			return err
		}
		log.Info("pushing records", "records", len(records), "batches", len(batches), "index", cfg.Meili.Index)

		for i, batch := range batches {
			task, err := addWithRetry(ctx, client, batch, log, i+1)
			if err != nil {
				return fmt.Errorf("import batch %d/%d: %w", i+1, len(batches), err)
			}
			done, err := client.WaitForTask(ctx, task.TaskUID, 0)
			if err != nil {
				return fmt.Errorf("import batch %d/%d: %w", i+1, len(batches), err)
			}
			log.Info("batch imported", "batch", i+1, "records", len(batch), "task", task.TaskUID, "status", done.Status)
		}

		if !pushSkipSettings {
			task, err := client.UpdateSettings(ctx, meili.DefaultSettings())
			if err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
			if _, err := client.WaitForTask(ctx, task.TaskUID, 0); err != nil {
				return fmt.Errorf("update settings: %w", err)
			}
			log.Info("index settings configured", "index", cfg.Meili.Index)
		}

		FormatPushSummary(cmd.OutOrStdout(), len(records), len(batches), cfg.Meili.Index)
		return nil
	},
}

// addWithRetry imports one batch, retrying transient engine errors with
// backoff.
func addWithRetry(ctx context.Context, client *meili.Client, batch []record.Record, log *slog.Logger, batchNum int) (*meili.TaskRef, error) {
	var task *meili.TaskRef
	var lastErr error
	for attempt := range meili.MaxRetries {
		task, lastErr = client.AddDocuments(ctx, batch)
		if lastErr == nil || !meili.IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable import error", "batch", batchNum, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(meili.Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return task, nil
}

func init() {
	pushCmd.Flags().StringVarP(&pushInput, "input", "i", "", "Records artifact to push (default: configured output)")
	pushCmd.Flags().BoolVar(&pushSkipSettings, "skip-settings", false, "Skip configuring index settings after import")
	rootCmd.AddCommand(pushCmd)
}
