// Command varspect starts an interactive Go session with a built-in
// variable inspector: evaluate expressions, then list the session's
// bindings or drill into a single value as a table.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/varspect/internal/config"
	"github.com/leengari/varspect/internal/display"
	"github.com/leengari/varspect/internal/inspect"
	"github.com/leengari/varspect/internal/logging"
)

const version = "0.2.0"

var (
	flagConfig   string
	flagColor    bool
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:     "varspect",
		Short:   "Inspect the variables of an interactive Go session",
		Version: version,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().BoolVar(&flagColor, "color", false, "style table titles and headers")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override logging level (debug|info|warn|error)")

	root.AddCommand(newReplCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, wires logging and builds the inspector shared
// by subcommands.
func setup() (*config.Config, *inspect.Inspector, *slog.Logger, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if flagColor {
		cfg.Color = true
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	logger, closeFn := logging.Setup(logging.Options{
		Level:  cfg.Logging.Level,
		SeqURL: cfg.Logging.SeqURL,
	})
	slog.SetDefault(logger)

	ins := inspect.New(inspect.Config{
		ExcludeNames:   cfg.Inspector.Exclude,
		Descending:     cfg.Inspector.Descending,
		MaxValueLength: cfg.Inspector.MaxValueLength,
		MaxRows:        cfg.Inspector.MaxRows,
		Sink:           display.NewTerminalSink(os.Stdout, cfg.Color),
		Logger:         logger,
		Observers:      []inspect.Observer{inspect.NewLoggingObserver()},
	})
	return cfg, ins, logger, closeFn, nil
}
