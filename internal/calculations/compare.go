package calculations

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CompareOverpayment runs the baseline (no overpayment) and the overpayment
// scenario on independent schedules and reports what the overpayment saves.
func CompareOverpayment(ctx context.Context, params LoanParameters, opts ...Option) (*Comparison, error) {
	var baseline, overpaid ScheduleResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseline = Simulate(params.WithOverpayment(0), opts...)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		overpaid = Simulate(params, opts...)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Comparison{
		Parameters:       params,
		Baseline:         baseline,
		Overpayment:      overpaid,
		TimeSavedPeriods: baseline.PeriodsElapsed - overpaid.PeriodsElapsed,
		InterestSaved:    baseline.TotalInterestPaid - overpaid.TotalInterestPaid,
		AmountSaved:      baseline.TotalAmountPaid - overpaid.TotalAmountPaid,
	}, nil
}
