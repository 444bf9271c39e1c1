package calculations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammo1235/mortgage-overpayment-calculator/pkg/utils"
)

func TestCompareOverpayment(t *testing.T) {
	params := LoanParameters{Principal: 300000, AnnualRate: 0.04, TermPeriods: 360, Overpayment: 100}

	cmp, err := CompareOverpayment(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, params, cmp.Parameters)
	assert.Equal(t, 0.0, cmp.Baseline.Overpayment)
	assert.Equal(t, 100.0, cmp.Overpayment.Overpayment)

	assert.Equal(t, 360, cmp.Baseline.PeriodsElapsed)
	assert.Equal(t, 318, cmp.Overpayment.PeriodsElapsed)
	assert.Equal(t, 42, cmp.TimeSavedPeriods)

	assert.Equal(t, utils.Round2(215608.52-186861.93), utils.Round2(cmp.InterestSaved))
	assert.Equal(t, utils.Round2(515608.52-487254.19), utils.Round2(cmp.AmountSaved))

	// both scenarios match independent single runs
	assert.Equal(t, Simulate(params.WithOverpayment(0)), cmp.Baseline)
	assert.Equal(t, Simulate(params), cmp.Overpayment)
}

func TestCompareOverpaymentWithoutOverpayment(t *testing.T) {
	params := LoanParameters{Principal: 100000, AnnualRate: 0.02, TermPeriods: 420}

	cmp, err := CompareOverpayment(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 0, cmp.TimeSavedPeriods)
	assert.Equal(t, 0.0, cmp.InterestSaved)
	assert.Equal(t, 0.0, cmp.AmountSaved)
}

func TestCompareOverpaymentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmp, err := CompareOverpayment(ctx, LoanParameters{Principal: 1000, AnnualRate: 0.05, TermPeriods: 12})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, cmp)
}

func TestComparisonRounded(t *testing.T) {
	params := LoanParameters{Principal: 100000, AnnualRate: 0.02, TermPeriods: 420, Overpayment: 100}

	cmp, err := CompareOverpayment(context.Background(), params)
	require.NoError(t, err)

	rounded := cmp.Rounded()
	assert.Equal(t, 139130.36, rounded.Baseline.TotalAmountPaid)
	assert.Equal(t, 26511.89, rounded.Overpayment.TotalInterestPaid)
	assert.Equal(t, 126, rounded.TimeSavedPeriods)
	assert.Equal(t, utils.Round2(cmp.InterestSaved), rounded.InterestSaved)
}
