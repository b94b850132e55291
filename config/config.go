// Package config loads pipeline settings from YAML.
package config

//go:generate go run ../tools/schema-generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/dataset"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// CorpusConfig defines how transcripts are read and flattened.
type CorpusConfig struct {
	// Type names the transcript convention: dps, scotus, fcic or callhome.
	Type string `yaml:"type"`

	// StripPunctuation drops punctuation tokens from the output. Defaults
	// to true.
	StripPunctuation bool `yaml:"strip_punctuation"`

	// Splitter selects the sentence splitter: "prose" (default) or "punkt".
	Splitter string `yaml:"splitter,omitempty"`

	// TokenizerCacheSize bounds the tokenizer's memo cache. 0 uses the
	// built-in default.
	TokenizerCacheSize int `yaml:"tokenizer_cache_size,omitempty"`
}

// DatasetConfig defines how training data is assembled.
type DatasetConfig struct {
	// ValidationFraction of the training segments held out for validation.
	ValidationFraction float64 `yaml:"validation_fraction,omitempty"`

	// Seed for the train/validation shuffle.
	Seed int64 `yaml:"seed,omitempty"`

	// Workers parsing files in parallel. 0 uses one per CPU.
	Workers int `yaml:"workers,omitempty"`

	// Format of the text output: "conll" (default) or "bitext".
	Format string `yaml:"format,omitempty"`
}

// LogConfig defines log verbosity.
type LogConfig struct {
	// Level is a logrus level name, e.g. "info" or "debug".
	Level string `yaml:"level,omitempty"`
}

// Config is the top-level configuration structure for disfl_corpus.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Dataset DatasetConfig `yaml:"dataset,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

const (
	FormatCoNLL  = "conll"
	FormatBitext = "bitext"
)

func Defaults() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Type:             "dps",
			StripPunctuation: true,
			Splitter:         "prose",
		},
		Dataset: DatasetConfig{
			ValidationFraction: dataset.DefaultValidationFraction,
			Seed:               dataset.DefaultSeed,
			Format:             FormatCoNLL,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load
// Reads the YAML file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate
// Rejects settings that would otherwise only fail once parsing starts.
func (cfg *Config) Validate() error {
	if _, err := disfl_corpus.ParseCorpusType(cfg.Corpus.Type); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Corpus.Splitter) {
	case "", "prose", "punkt":
	default:
		return fmt.Errorf("%w: unknown splitter %q", ErrInvalidConfig,
			cfg.Corpus.Splitter)
	}
	if cfg.Corpus.TokenizerCacheSize < 0 {
		return fmt.Errorf("%w: negative tokenizer_cache_size",
			ErrInvalidConfig)
	}
	if cfg.Dataset.ValidationFraction < 0 ||
		cfg.Dataset.ValidationFraction >= 1 {
		return fmt.Errorf("%w: validation_fraction %v not in [0, 1)",
			ErrInvalidConfig, cfg.Dataset.ValidationFraction)
	}
	if cfg.Dataset.Workers < 0 {
		return fmt.Errorf("%w: negative workers", ErrInvalidConfig)
	}
	switch cfg.Dataset.Format {
	case "", FormatCoNLL, FormatBitext:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig,
			cfg.Dataset.Format)
	}
	if cfg.Log.Level != "" {
		if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (cfg *Config) CorpusType() (disfl_corpus.CorpusType, error) {
	return disfl_corpus.ParseCorpusType(cfg.Corpus.Type)
}

// Options
// Builds the pipeline options the configuration describes.
func (cfg *Config) Options(logger *logrus.Entry) (disfl_corpus.Options,
	error) {
	cached, err := disfl_corpus.NewCachedTokenizer(
		disfl_corpus.NewProseTokenizer(), cfg.Corpus.TokenizerCacheSize)
	if err != nil {
		return disfl_corpus.Options{}, err
	}
	splitter, err := disfl_corpus.NewSplitter(
		strings.ToLower(cfg.Corpus.Splitter))
	if err != nil {
		return disfl_corpus.Options{}, err
	}
	return disfl_corpus.Options{
		StripPunctuation: cfg.Corpus.StripPunctuation,
		Tokenizer:        cached,
		Splitter:         splitter,
		Logger:           logger,
	}, nil
}
