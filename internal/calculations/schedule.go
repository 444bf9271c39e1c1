package calculations

// Option configures a Schedule.
type Option func(*Schedule)

// WithEntries records a ScheduleEntry for every simulated period.
func WithEntries() Option {
	return func(s *Schedule) {
		s.recordEntries = true
	}
}

// Schedule is the mutable state of one amortization run. A Schedule must not be
// shared between goroutines; build one per scenario.
type Schedule struct {
	principal     float64
	periodicRate  float64
	termPeriods   int
	overpayment   float64
	recordEntries bool

	remaining      float64
	minimumPayment float64
	elapsed        int
}

// NewSchedule prepares a run for params using a monthly rate of AnnualRate/12.
func NewSchedule(params LoanParameters, opts ...Option) *Schedule {
	return NewScheduleWithPeriodicRate(params.Principal, params.PeriodicRate(),
		params.TermPeriods, params.Overpayment, opts...)
}

// NewScheduleWithPeriodicRate prepares a run with the per-period rate given directly.
func NewScheduleWithPeriodicRate(principal, periodicRate float64, termPeriods int,
	overpayment float64, opts ...Option) *Schedule {

	s := &Schedule{
		principal:    principal,
		periodicRate: periodicRate,
		termPeriods:  termPeriods,
		overpayment:  overpayment,
		remaining:    principal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Remaining returns the outstanding principal after the last Run.
func (s *Schedule) Remaining() float64 {
	return s.remaining
}

// Elapsed returns the number of periods processed by the last Run.
func (s *Schedule) Elapsed() int {
	return s.elapsed
}

// Run simulates the schedule period by period until the balance is paid off or
// the term is exhausted. The state is reset on entry, so Run is repeatable.
//
// TotalAmountPaid accumulates the nominal payment plus overpayment for every
// period, including the final one where the principal component is clamped to
// the outstanding balance.
func (s *Schedule) Run() ScheduleResult {
	s.remaining = s.principal
	s.elapsed = 0
	s.minimumPayment = MinimumPayment(s.principal, s.periodicRate, s.termPeriods)

	var (
		totalInterest  float64
		totalPaid      float64
		totalPrincipal float64
		entries        []ScheduleEntry
	)
	if s.recordEntries {
		entries = make([]ScheduleEntry, 0, s.termPeriods)
	}

	for period := 1; period <= s.termPeriods; period++ {
		interest := s.remaining * s.periodicRate
		totalInterest += interest

		principalComponent := s.minimumPayment - interest + s.overpayment
		if principalComponent > s.remaining {
			principalComponent = s.remaining
		}
		s.remaining -= principalComponent
		totalPrincipal += principalComponent

		totalPaid += s.minimumPayment + s.overpayment
		s.elapsed++

		if s.recordEntries {
			entries = append(entries, ScheduleEntry{
				Period:              period,
				Payment:             s.minimumPayment + s.overpayment,
				Interest:            interest,
				PrincipalComponent:  principalComponent,
				RemainingPrincipal:  s.remaining,
				CumulativeInterest:  totalInterest,
				CumulativePrincipal: totalPrincipal,
			})
		}

		// raw comparison: rounding first can shift the payoff period by one
		if s.remaining <= 0 {
			break
		}
	}

	return ScheduleResult{
		MinimumPayment:    s.minimumPayment,
		Overpayment:       s.overpayment,
		TotalAmountPaid:   totalPaid,
		TotalInterestPaid: totalInterest,
		PeriodsElapsed:    s.elapsed,
		Entries:           entries,
	}
}

// Simulate runs a fresh Schedule for params.
func Simulate(params LoanParameters, opts ...Option) ScheduleResult {
	return NewSchedule(params, opts...).Run()
}
