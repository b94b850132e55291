package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/config"
	"github.com/wbrown/disfl_corpus/dataset"
	"github.com/wbrown/disfl_corpus/types"
)

func segmentsOf(examples []dataset.Example) []types.Segment {
	segments := make([]types.Segment, 0, len(examples))
	for _, example := range examples {
		segments = append(segments, example.Segment)
	}
	return segments
}

// writeTextSplit
// Writes one text file per split into dir, in the configured format.
func writeTextSplit(dir string, split *dataset.Split, format string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	parts := map[string][]dataset.Example{
		"train": split.Train,
		"valid": split.Validation,
		"test":  split.Test,
	}
	for name, examples := range parts {
		path := filepath.Join(dir, name+"."+format)
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		if writeErr := writeSegments(file, segmentsOf(examples),
			format); writeErr != nil {
			file.Close()
			return fmt.Errorf("%s: %w", path, writeErr)
		}
		if closeErr := file.Close(); closeErr != nil {
			return closeErr
		}
	}
	return nil
}

func newSwitchboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switchboard",
		Short: "Build the Switchboard disfluency dataset",
		Long: "Splits a Switchboard treebank directory into train and test " +
			"files following Johnson & Charniak (2004), holds out a " +
			"validation set from train, and saves all three.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			root, _ := cmd.Flags().GetString("dir")
			output, _ := cmd.Flags().GetString("output")
			textDir, _ := cmd.Flags().GetString("text-dir")
			cfg.Corpus.Type = "dps"
			// Without a config file the export keeps punctuation, unlike
			// the other commands.
			configPath, _ := cmd.Flags().GetString("config")
			if cmd.Flags().Changed("strip-punctuation") || configPath == "" {
				cfg.Corpus.StripPunctuation, _ = cmd.Flags().GetBool(
					"strip-punctuation")
			}
			if cmd.Flags().Changed("format") {
				cfg.Dataset.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Dataset.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			trainPaths, testPaths, err := dataset.JohnsonCharniakSplit(root)
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"train": humanize.Comma(int64(len(trainPaths))),
				"test":  humanize.Comma(int64(len(testPaths))),
			}).Info("found Switchboard files")

			opts, err := cfg.Options(logger)
			if err != nil {
				return err
			}
			collectOpts := dataset.Options{
				CorpusType: disfl_corpus.CorpusSwitchboard,
				Corpus:     opts,
				Workers:    cfg.Dataset.Workers,
			}
			testResults, err := dataset.Collect(testPaths, collectOpts)
			if err != nil {
				return err
			}
			trainResults, err := dataset.Collect(trainPaths, collectOpts)
			if err != nil {
				return err
			}
			train, validation := dataset.TrainValidationSplit(
				dataset.Examples(trainResults),
				cfg.Dataset.ValidationFraction, cfg.Dataset.Seed)
			split := &dataset.Split{
				Train:      train,
				Validation: validation,
				Test:       dataset.Examples(testResults),
			}
			logger.WithFields(logrus.Fields{
				"train": humanize.Comma(int64(len(split.Train))),
				"valid": humanize.Comma(int64(len(split.Validation))),
				"test":  humanize.Comma(int64(len(split.Test))),
			}).Info("segments")

			if err := dataset.Save(output, split); err != nil {
				return err
			}
			logger.WithField("path", output).Info("saved dataset")
			if textDir != "" {
				format := cfg.Dataset.Format
				if format == "" {
					format = config.FormatCoNLL
				}
				if err := writeTextSplit(textDir, split,
					format); err != nil {
					return err
				}
				logger.WithField("dir", textDir).Info("wrote text splits")
			}
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", "",
		"Switchboard treebank directory containing dysfl/")
	cmd.Flags().StringP("output", "o", "switchboard.msgpack",
		"Output dataset file")
	cmd.Flags().String("text-dir", "",
		"Also write train/valid/test text files into this directory")
	cmd.Flags().StringP("format", "f", config.FormatCoNLL,
		"Text format (conll, bitext)")
	cmd.Flags().Bool("strip-punctuation", false,
		"Drop punctuation tokens")
	cmd.Flags().Int("workers", 0, "Parallel workers, 0 for one per CPU")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}
