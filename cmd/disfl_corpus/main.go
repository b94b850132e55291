package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wbrown/disfl_corpus/config"
)

// loadConfig
// Reads --config if given, otherwise the defaults, and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, *logrus.Entry, error) {
	cfg := config.Defaults()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nil, err
		}
		logger.SetLevel(parsed)
	}
	return cfg, logrus.NewEntry(logger).WithField("cmd", cmd.Name()), nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "disfl_corpus",
		Short:         "Disfluency annotated corpus normalization",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String("config", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info",
		"Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newFlattenCmd())
	rootCmd.AddCommand(newSwitchboardCmd())
	rootCmd.AddCommand(newReplCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
