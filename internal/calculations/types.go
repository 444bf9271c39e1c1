package calculations

import "github.com/sammo1235/mortgage-overpayment-calculator/pkg/utils"

// LoanParameters describes a fixed-rate installment loan.
type LoanParameters struct {
	Principal   float64 `json:"principal"`
	AnnualRate  float64 `json:"annual_rate"`
	TermPeriods int     `json:"term_periods"`
	Overpayment float64 `json:"overpayment"`
}

// PeriodicRate returns the monthly interest rate.
func (p LoanParameters) PeriodicRate() float64 {
	return p.AnnualRate / utils.MonthsPerYear
}

// WithOverpayment returns a copy of p with a different overpayment.
func (p LoanParameters) WithOverpayment(overpayment float64) LoanParameters {
	p.Overpayment = overpayment
	return p
}

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	Period              int     `json:"period"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// ScheduleResult holds the totals of one simulation run at full precision.
type ScheduleResult struct {
	MinimumPayment    float64         `json:"minimum_payment"`
	Overpayment       float64         `json:"overpayment"`
	TotalAmountPaid   float64         `json:"total_amount_paid"`
	TotalInterestPaid float64         `json:"total_interest_paid"`
	PeriodsElapsed    int             `json:"periods_elapsed"`
	Entries           []ScheduleEntry `json:"schedule,omitempty"`
}

// MonthlyCost is the amount paid each period including the overpayment.
func (r ScheduleResult) MonthlyCost() float64 {
	return r.MinimumPayment + r.Overpayment
}

// Rounded returns a copy with every currency value rounded to 2 decimals.
func (r ScheduleResult) Rounded() ScheduleResult {
	out := r
	out.MinimumPayment = utils.Round2(r.MinimumPayment)
	out.Overpayment = utils.Round2(r.Overpayment)
	out.TotalAmountPaid = utils.Round2(r.TotalAmountPaid)
	out.TotalInterestPaid = utils.Round2(r.TotalInterestPaid)
	if r.Entries != nil {
		out.Entries = make([]ScheduleEntry, len(r.Entries))
		for i, e := range r.Entries {
			out.Entries[i] = ScheduleEntry{
				Period:              e.Period,
				Payment:             utils.Round2(e.Payment),
				Interest:            utils.Round2(e.Interest),
				PrincipalComponent:  utils.Round2(e.PrincipalComponent),
				RemainingPrincipal:  utils.Round2(e.RemainingPrincipal),
				CumulativeInterest:  utils.Round2(e.CumulativeInterest),
				CumulativePrincipal: utils.Round2(e.CumulativePrincipal),
			}
		}
	}
	return out
}

// Comparison contrasts a baseline run (no overpayment) with an overpayment run.
type Comparison struct {
	Parameters       LoanParameters `json:"parameters"`
	Baseline         ScheduleResult `json:"baseline"`
	Overpayment      ScheduleResult `json:"overpayment"`
	TimeSavedPeriods int            `json:"time_saved_periods"`
	InterestSaved    float64        `json:"interest_saved"`
	AmountSaved      float64        `json:"amount_saved"`
}

// Rounded returns a copy suitable for display, with currency values at 2 decimals.
func (c Comparison) Rounded() Comparison {
	out := c
	out.Baseline = c.Baseline.Rounded()
	out.Overpayment = c.Overpayment.Rounded()
	out.InterestSaved = utils.Round2(c.InterestSaved)
	out.AmountSaved = utils.Round2(c.AmountSaved)
	return out
}
