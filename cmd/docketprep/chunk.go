package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docketprep/internal/chunker"
	"github.com/dgallion1/docketprep/internal/record"
)

var (
	chunkInput      string
	chunkMaxMB      int
	chunkMaxRecords int
)

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Split a records artifact into size-bounded part files",
	Long: `Chunk reads the JSON artifact produced by build and writes it back out as
<name>_partN.json files, each below the configured size threshold, so every
part fits the search engine's upload limit. Part boundaries never split a
record and part order preserves record order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		input := cfg.Output
		if chunkInput != "" {
			input = chunkInput
		}
		lim := chunker.Limits{
			MaxBytes:   cfg.Chunk.MaxBytes,
			MaxRecords: cfg.Chunk.MaxRecords,
		}
		if cmd.Flags().Changed("max-mb") {
			lim.MaxBytes = int64(chunkMaxMB) << 20
		}
		if cmd.Flags().Changed("max-records") {
			lim.MaxRecords = chunkMaxRecords
		}
		log := newLogger(cfg)

		records, err := readArtifact(input)
		if err != nil {
			return err
		}

		parts, err := chunker.Partition(records, lim)
		if err != nil {
			return err
		}
		written, err := chunker.WriteParts(input, parts)
		if err != nil {
			return err
		}
		for i, path := range written {
			log.Info("part written", "part", i+1, "path", path, "records", len(parts[i]))
		}

		FormatChunkSummary(cmd.OutOrStdout(), len(records), written)
		return nil
	},
}

func init() {
	chunkCmd.Flags().StringVarP(&chunkInput, "input", "i", "", "Records artifact to split (default: configured output)")
	chunkCmd.Flags().IntVar(&chunkMaxMB, "max-mb", 18, "Max part size in MB")
	chunkCmd.Flags().IntVar(&chunkMaxRecords, "max-records", 0, "Max records per part (0 = unlimited)")
	rootCmd.AddCommand(chunkCmd)
}

// readArtifact loads a records artifact written by the build command.
func readArtifact(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
