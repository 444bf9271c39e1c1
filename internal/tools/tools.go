package tools

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sammo1235/mortgage-overpayment-calculator/internal/calculations"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/config"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/metrics"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/validators"
)

// Tool names used as span names and metric labels.
const (
	ToolLoanSchedule       = "loan_schedule"
	ToolCompareOverpayment = "compare_overpayment"
)

// ScheduleHandler simulates a single loan scenario.
type ScheduleHandler func(ctx context.Context, params calculations.LoanParameters,
	opts ...calculations.Option) (*calculations.ScheduleResult, error)

// CompareHandler simulates the baseline and overpayment scenarios of a loan.
type CompareHandler func(ctx context.Context, params calculations.LoanParameters,
	opts ...calculations.Option) (*calculations.Comparison, error)

// LoanScheduleHandler validates params and runs one amortization schedule.
func LoanScheduleHandler(cfg *config.Config, tracer trace.Tracer) ScheduleHandler {
	return func(ctx context.Context, params calculations.LoanParameters,
		opts ...calculations.Option) (*calculations.ScheduleResult, error) {

		ctx, span := tracer.Start(ctx, ToolLoanSchedule)
		defer span.End()
		span.SetAttributes(loanAttributes(params)...)

		if err := validate(ctx, cfg, span, ToolLoanSchedule, params); err != nil {
			return nil, err
		}

		result := calculations.Simulate(params, opts...)
		observe(scenarioName(params), result)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("minimum_payment", result.MinimumPayment),
			attribute.Float64("total_paid", result.TotalAmountPaid),
			attribute.Int("periods_elapsed", result.PeriodsElapsed),
		)
		metrics.ToolCalls.WithLabelValues(ToolLoanSchedule, "success").Inc()
		slog.DebugContext(ctx, "schedule simulated",
			"tool", ToolLoanSchedule,
			"periods", result.PeriodsElapsed,
			"total_interest", result.TotalInterestPaid,
		)

		return &result, nil
	}
}

// CompareOverpaymentHandler validates params and compares paying the minimum
// against paying the minimum plus params.Overpayment every period.
func CompareOverpaymentHandler(cfg *config.Config, tracer trace.Tracer) CompareHandler {
	return func(ctx context.Context, params calculations.LoanParameters,
		opts ...calculations.Option) (*calculations.Comparison, error) {

		ctx, span := tracer.Start(ctx, ToolCompareOverpayment)
		defer span.End()
		span.SetAttributes(loanAttributes(params)...)

		if err := validate(ctx, cfg, span, ToolCompareOverpayment, params); err != nil {
			return nil, err
		}

		cmp, err := calculations.CompareOverpayment(ctx, params, opts...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "calculation_error")
			metrics.ToolCalls.WithLabelValues(ToolCompareOverpayment, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(ToolCompareOverpayment, "calculation").Inc()
			return nil, fmt.Errorf("calculation failed: %w", err)
		}
		observe("baseline", cmp.Baseline)
		observe("overpayment", cmp.Overpayment)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("time_saved_periods", cmp.TimeSavedPeriods),
			attribute.Float64("interest_saved", cmp.InterestSaved),
			attribute.Float64("amount_saved", cmp.AmountSaved),
		)
		metrics.ToolCalls.WithLabelValues(ToolCompareOverpayment, "success").Inc()
		slog.DebugContext(ctx, "overpayment compared",
			"tool", ToolCompareOverpayment,
			"time_saved_periods", cmp.TimeSavedPeriods,
			"interest_saved", cmp.InterestSaved,
		)

		return cmp, nil
	}
}

func validate(ctx context.Context, cfg *config.Config, span trace.Span, toolName string,
	params calculations.LoanParameters) error {

	if err := validators.CheckParameters(cfg, params); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_error")
		metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
		slog.WarnContext(ctx, "rejected loan parameters", "tool", toolName, "error", err)
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

func loanAttributes(params calculations.LoanParameters) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("principal", params.Principal),
		attribute.Float64("annual_rate", params.AnnualRate),
		attribute.Int("term_periods", params.TermPeriods),
		attribute.Float64("overpayment", params.Overpayment),
	}
}

func observe(scenario string, result calculations.ScheduleResult) {
	metrics.ScheduleRuns.WithLabelValues(scenario).Inc()
	metrics.PayoffPeriods.WithLabelValues(scenario).Observe(float64(result.PeriodsElapsed))
}

func scenarioName(params calculations.LoanParameters) string {
	if params.Overpayment == 0 {
		return "baseline"
	}
	return "overpayment"
}
