package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts handler invocations by outcome.
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total number of calculator tool calls",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts rejected or failed calculations.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Number of calculation errors",
		},
		[]string{"tool_name", "error_type"},
	)

	// ScheduleRuns counts simulated schedules per scenario (baseline, overpayment).
	ScheduleRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_runs_total",
			Help: "Amortization schedules simulated",
		},
		[]string{"scenario"},
	)

	// PayoffPeriods observes how many periods each simulated loan took to pay off.
	PayoffPeriods = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schedule_payoff_periods",
			Help:    "Periods elapsed until the loan was paid off",
			Buckets: []float64{12, 60, 120, 180, 240, 300, 360, 420, 480, 600},
		},
		[]string{"scenario"},
	)
)

// WriteTextfile writes every registered metric to path in the Prometheus text
// format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
