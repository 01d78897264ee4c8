// Package config loads runtime configuration from defaults, an optional YAML
// file and DOCKETPREP_-prefixed environment variables, in that order. Load
// returns a value; there is no process-global configuration state.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dgallion1/docketprep/internal/parser"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "docketprep.yaml"

const envPrefix = "DOCKETPREP_"

type Config struct {
	// Corpus input
	Root       string   `koanf:"root"`
	Extensions []string `koanf:"extensions" validate:"min=1,dive,startswith=."`

	// Output artifact
	Output string `koanf:"output" validate:"required"`

	// Concurrent files processed at once
	Concurrency int `koanf:"concurrency" validate:"min=1,max=64"`

	PDFFallbackPdftotext bool `koanf:"pdf_fallback_pdftotext"`

	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=json text"`

	Chunk ChunkConfig `koanf:"chunk"`
	Meili MeiliConfig `koanf:"meili"`
}

// ChunkConfig bounds the size of one output part.
type ChunkConfig struct {
	MaxBytes   int64 `koanf:"max_bytes" validate:"min=0"`
	MaxRecords int   `koanf:"max_records" validate:"min=0"`
}

// MeiliConfig points the push command at a Meilisearch instance.
type MeiliConfig struct {
	URL            string `koanf:"url" validate:"omitempty,url"`
	APIKey         string `koanf:"api_key"`
	Index          string `koanf:"index" validate:"required"`
	BatchSize      int    `koanf:"batch_size" validate:"min=1"`
	TimeoutSeconds int    `koanf:"timeout_seconds" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Extensions:           []string{".txt"},
		Output:               "meilisearch_documents.json",
		Concurrency:          4,
		PDFFallbackPdftotext: true,
		LogLevel:             "info",
		LogFormat:            "text",
		Chunk: ChunkConfig{
			MaxBytes: 18 * 1024 * 1024,
		},
		Meili: MeiliConfig{
			URL:            "http://localhost:7700",
			Index:          "documents",
			BatchSize:      1000,
			TimeoutSeconds: 300,
		},
	}
}

// Load builds the configuration. An explicit path must exist; the default
// path is used only when present.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Env overrides: DOCKETPREP_ROOT, DOCKETPREP_MEILI_API_KEY, ...
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps an environment variable name onto a koanf path. Nested
// sections use the dot delimiter (DOCKETPREP_MEILI_API_KEY -> meili.api_key);
// underscore-bearing top-level keys like log_level stay flat.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"meili", "chunk"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			var sb strings.Builder
			sb.WriteString("invalid configuration:")
			for _, e := range errs {
				sb.WriteString(fmt.Sprintf(" %s failed %q (value: %v);", e.Namespace(), e.Tag(), e.Value()))
			}
			return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
		}
		return fmt.Errorf("validate config: %w", err)
	}

	for _, ext := range c.Extensions {
		if !parser.SupportedExtensions[strings.ToLower(ext)] {
			return fmt.Errorf("invalid configuration: extension %q has no extractor", ext)
		}
	}
	return nil
}
