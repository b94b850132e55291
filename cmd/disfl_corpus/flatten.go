package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/config"
	"github.com/wbrown/disfl_corpus/export"
	"github.com/wbrown/disfl_corpus/resources"
	"github.com/wbrown/disfl_corpus/types"
)

// writeSegments
// Renders segments to w in the requested format.
func writeSegments(w io.Writer, segments []types.Segment,
	format string) error {
	switch format {
	case "segments":
		for _, segment := range segments {
			if _, err := fmt.Fprintln(w, segment.String()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatCoNLL:
		sentences := make([]export.Sentence, 0, len(segments))
		for _, segment := range segments {
			sentence, err := export.CoNLL(segment)
			if err != nil {
				return err
			}
			sentences = append(sentences, sentence)
		}
		return export.WriteCoNLL(w, sentences)
	case config.FormatBitext:
		pairs := make([]export.Pair, 0, len(segments))
		for _, segment := range segments {
			pair, err := export.Bitext(segment)
			if err != nil {
				return err
			}
			pairs = append(pairs, pair)
		}
		return export.WriteBitext(w, pairs)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten <file>",
		Short: "Flatten one transcript into tagged segments",
		Long: "Reads one transcript with the adapter for its corpus type " +
			"and prints its flattened segments. With --sample the argument " +
			"names an embedded sample corpus instead of a file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("type") {
				cfg.Corpus.Type, _ = cmd.Flags().GetString("type")
			}
			if cmd.Flags().Changed("strip-punctuation") {
				cfg.Corpus.StripPunctuation, _ = cmd.Flags().GetBool(
					"strip-punctuation")
			}
			if cmd.Flags().Changed("splitter") {
				cfg.Corpus.Splitter, _ = cmd.Flags().GetString("splitter")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			sample, _ := cmd.Flags().GetBool("sample")

			if sample && len(args) == 0 {
				names, listErr := resources.EmbeddedSamples()
				if listErr != nil {
					return listErr
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			} else if len(args) == 0 {
				return fmt.Errorf("flatten needs a transcript path")
			}

			corpusType, err := cfg.CorpusType()
			if err != nil {
				return err
			}
			opts, err := cfg.Options(logger)
			if err != nil {
				return err
			}
			var corpus *disfl_corpus.Corpus
			if sample {
				corpus, err = disfl_corpus.NewSampleCorpus(args[0],
					corpusType, opts)
			} else {
				corpus, err = disfl_corpus.NewCorpus(args[0], corpusType,
					opts)
			}
			if err != nil {
				return err
			}
			defer corpus.Close()

			segments, err := corpus.Parse()
			if err != nil {
				return err
			}
			if err := writeSegments(cmd.OutOrStdout(), segments,
				format); err != nil {
				return err
			}
			logger.WithField("file", corpus.Path).Info(
				corpus.Stats().String())
			return nil
		},
	}

	cmd.Flags().StringP("type", "t", "dps",
		"Corpus type (dps, scotus, fcic, callhome)")
	cmd.Flags().Bool("strip-punctuation", true,
		"Drop punctuation tokens")
	cmd.Flags().String("splitter", "prose",
		"Sentence splitter (prose, punkt)")
	cmd.Flags().StringP("format", "f", "segments",
		"Output format (segments, conll, bitext)")
	cmd.Flags().Bool("sample", false,
		"Read an embedded sample corpus; lists them when no name is given")

	return cmd
}
