package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/export"
)

// A REPL for trying annotations against the flattener.

// replLine
// Flattens one line of input. dps input is taken as a single annotation,
// other corpus types go through their adapter first.
func replLine(input string, corpusType disfl_corpus.CorpusType,
	opts disfl_corpus.Options) (string, error) {
	var sb strings.Builder
	if corpusType == disfl_corpus.CorpusSwitchboard {
		segment, err := disfl_corpus.Flatten(
			disfl_corpus.StandardizeBrackets(input), opts.StripPunctuation)
		if err != nil {
			return "", err
		}
		rows, err := export.CoNLL(segment)
		if err != nil {
			return "", err
		}
		sb.WriteString(segment.String() + "\n")
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("|%s %s", row.Word, row.Label))
		}
		sb.WriteString("\n")
		return sb.String(), nil
	}
	corpus, err := disfl_corpus.NewCorpusFromBytes("<stdin>", []byte(input),
		corpusType, opts)
	if err != nil {
		return "", err
	}
	segments, err := corpus.Parse()
	if err != nil {
		return "", err
	}
	if len(corpus.Rejected) > 0 {
		return "", corpus.Rejected[0]
	}
	for _, segment := range segments {
		sb.WriteString(segment.String() + "\n")
	}
	return sb.String(), nil
}

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Flatten annotations typed on stdin",
		Args:  cobra.NoArgs,
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
			if err := cfg.Validate(); err != nil {
				return err
			}
			corpusType, err := cfg.CorpusType()
			if err != nil {
				return err
			}
			opts, err := cfg.Options(logger)
			if err != nil {
				return err
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for {
				fmt.Fprint(out, ">>> ")
				input, readErr := reader.ReadString('\n')
				if readErr != nil && !errors.Is(readErr, io.EOF) {
					return readErr
				}
				input = strings.TrimRight(input, "\r\n")
				if input != "" {
					// Literal \n in the input stands for a line break.
					input = strings.Replace(input, "\\n", "\n", -1)
					result, lineErr := replLine(input, corpusType, opts)
					if lineErr != nil {
						fmt.Fprintf(out, "error: %v\n", lineErr)
					} else {
						fmt.Fprint(out, result)
					}
				}
				if readErr != nil {
					fmt.Fprintln(out)
					return nil
				}
			}
		},
	}

	cmd.Flags().StringP("type", "t", "dps",
		"Corpus type (dps, scotus, fcic, callhome)")
	cmd.Flags().Bool("strip-punctuation", true, "Drop punctuation tokens")

	return cmd
}
