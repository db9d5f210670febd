package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/iwvelando/finance-report/internal/config"
	"github.com/iwvelando/finance-report/internal/loader"
	"github.com/iwvelando/finance-report/internal/logging"
	"github.com/iwvelando/finance-report/internal/report"
	"github.com/iwvelando/finance-report/internal/summary"
	currencyfmt "github.com/iwvelando/finance-report/pkg/format"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func usage(flags *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <transactions.json|transactions.csv>\n\n", filepath.Base(os.Args[0]))
		flags.PrintDefaults()
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("finance-report", pflag.ContinueOnError)
	flags.Usage = usage(flags)
	configLocation := flags.String("config", "", "path to configuration file (default $FINANCE_REPORT_CONFIG or ./finance-report.yaml)")
	flags.StringP("output", "o", "", "write the report to this file instead of stdout")
	flags.StringP("format", "f", "", "report format: markdown, html, json")
	flags.Bool("pretty", false, "indent JSON output")
	flags.String("input-format", "", "input format: auto, json, csv")
	flags.String("default-category", "", "category assigned to records with a blank category")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (json, console)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	inputPath := flags.Arg(0)

	if err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load .env\", \"error\": %q}\n", err.Error())
		return 1
	}

	if *configLocation == "" {
		*configLocation = config.ConfigPathFromEnv()
	}

	// Flags are bound into the configuration, so they already take precedence.
	conf, err := config.LoadConfiguration(*configLocation, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		return 1
	}

	logger, err := logging.NewLogger(conf.Logging, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := conf.Validate(); err != nil {
		logger.Error("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := generate(ctx, logger, conf, inputPath); err != nil {
		logger.Error("failed to generate report",
			zap.String("op", "main"),
			zap.String("input", inputPath),
			zap.Error(err),
		)
		return 1
	}
	return 0
}

// generate runs load, summarize and render for one input file and writes the
// result to the configured destination.
func generate(ctx context.Context, logger *zap.Logger, conf *config.Configuration, inputPath string) error {
	format, err := report.ParseFormat(conf.Output.Format)
	if err != nil {
		return err
	}

	l := loader.New(logger, loader.Options{DefaultCategory: conf.Input.DefaultCategory})
	txns, err := l.Load(ctx, inputPath, loader.Format(conf.Input.Format))
	if err != nil {
		return err
	}

	s := summary.Summarize(txns)
	logger.Info("summarized transactions",
		zap.String("op", "main.generate"),
		zap.Int("transactions", s.TransactionCount),
		zap.Int("categories", len(s.CategoryBreakdown)),
		zap.String("net_balance", currencyfmt.Plain(s.NetBalance)),
	)

	body, err := report.Render(s, format, report.Options{Pretty: conf.Output.Pretty})
	if err != nil {
		return err
	}

	if conf.Output.Path == "" {
		_, err = fmt.Fprint(os.Stdout, body)
		return err
	}

	if dir := filepath.Dir(conf.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(conf.Output.Path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", conf.Output.Path, err)
	}
	logger.Info("report written",
		zap.String("op", "main.generate"),
		zap.String("path", conf.Output.Path),
		zap.String("format", string(format)),
	)
	return nil
}
