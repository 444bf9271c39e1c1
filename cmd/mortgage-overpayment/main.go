package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/sammo1235/mortgage-overpayment-calculator/internal/calculations"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/config"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/metrics"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/report"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/tools"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/tracing"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/validators"
)

var (
	jsonFlag        = cli.BoolFlag{Name: "json", Usage: "print the comparison as JSON"}
	scheduleFlag    = cli.BoolFlag{Name: "schedule", Usage: "print the per-period schedule of the overpayment plan"}
	metricsFileFlag = cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to `PATH` on exit (overrides METRICS_FILE)"}
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "mortgage-overpayment"
	app.Usage = "compare a mortgage repaid at the minimum payment against one with a monthly overpayment"
	app.ArgsUsage = "<principal> <annual_rate> <term_periods> [overpayment]"
	app.Version = tracing.ServiceVersion
	app.Flags = []cli.Flag{jsonFlag, scheduleFlag, metricsFileFlag}
	app.Writer = stdout
	app.Action = func(cctx *cli.Context) error {
		return run(cctx, stdout)
	}
	return app
}

func run(cctx *cli.Context, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if path := cctx.String(metricsFileFlag.Name); path != "" {
		cfg.MetricsFile = path
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	params, err := validators.ParseArgs(cctx.Args())
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}

	tracer, shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("tracing init failed: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()
	logger.Debug("tracing configured", "endpoint", cfg.OTELEndpoint, "service", cfg.OTELServiceName)

	compare := tools.CompareOverpaymentHandler(cfg, tracer)
	cmp, err := compare(ctx, params)
	if err != nil {
		return handlerError(err)
	}

	if cctx.Bool(scheduleFlag.Name) {
		schedule := tools.LoanScheduleHandler(cfg, tracer)
		result, err := schedule(ctx, params, calculations.WithEntries())
		if err != nil {
			return handlerError(err)
		}
		cmp.Overpayment.Entries = result.Entries
	}

	if err := render(stdout, cfg, cmp, cctx.Bool(jsonFlag.Name)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("metrics export failed", "path", cfg.MetricsFile, "error", err)
		}
	}

	return nil
}

func handlerError(err error) error {
	if errors.Is(err, validators.ErrInvalidArgumentValue) {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}
	return fmt.Errorf("application error: %w", err)
}

// render prints the schedule table before the comparison when entries were recorded.
func render(w io.Writer, cfg *config.Config, cmp *calculations.Comparison, asJSON bool) error {
	if asJSON {
		return report.WriteJSON(w, cmp)
	}

	printer := report.NewPrinter(w, cfg.CurrencySymbol)
	if err := printer.WriteSchedule(cmp.Overpayment); err != nil {
		return err
	}
	return printer.WriteComparison(cmp)
}
