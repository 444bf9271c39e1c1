// Package report renders calculator results for people and machines. All
// currency rounding happens here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sammo1235/mortgage-overpayment-calculator/internal/calculations"
	"github.com/sammo1235/mortgage-overpayment-calculator/pkg/utils"
)

// Printer writes results with a fixed currency symbol.
type Printer struct {
	w        io.Writer
	currency string
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, currency string) *Printer {
	return &Printer{w: w, currency: currency}
}

func (p *Printer) money(amount float64) string {
	return utils.FormatMoney(p.currency, amount)
}

// WriteRun prints the summary of one simulated schedule.
func (p *Printer) WriteRun(result calculations.ScheduleResult) error {
	years, months := utils.YearsMonths(result.PeriodsElapsed)

	_, err := fmt.Fprintf(p.w,
		"\nRunning schedule for overpayment amount %s, monthly cost %s\n"+
			"Mortgage paid in %d years, %d months\n"+
			"Total Interest Paid: %s\n"+
			"Total Amount Paid: %s\n",
		p.money(result.Overpayment), p.money(result.MonthlyCost()),
		years, months,
		p.money(result.TotalInterestPaid),
		p.money(result.TotalAmountPaid),
	)
	return err
}

// WriteComparison prints both scenarios followed by what the overpayment saves.
func (p *Printer) WriteComparison(cmp *calculations.Comparison) error {
	if err := p.WriteRun(cmp.Baseline); err != nil {
		return err
	}
	if err := p.WriteRun(cmp.Overpayment); err != nil {
		return err
	}

	years, months := utils.YearsMonths(cmp.TimeSavedPeriods)
	_, err := fmt.Fprintf(p.w,
		"\nTime saved: %d years %d months\n"+
			"Interest saved: %s\n"+
			"Amount saved: %s\n",
		years, months,
		p.money(cmp.InterestSaved),
		p.money(cmp.AmountSaved),
	)
	return err
}

// WriteSchedule prints the per-period breakdown as an aligned table. It writes
// nothing when the result was simulated without entries.
func (p *Printer) WriteSchedule(result calculations.ScheduleResult) error {
	if len(result.Entries) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Period\tPayment\tInterest\tPrincipal\tRemaining\t")
	for _, e := range result.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			e.Period,
			p.money(e.Payment),
			p.money(e.Interest),
			p.money(e.PrincipalComponent),
			p.money(e.RemainingPrincipal),
		)
	}
	return tw.Flush()
}

// WriteJSON encodes the comparison with currency values rounded to 2 decimals.
func WriteJSON(w io.Writer, cmp *calculations.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cmp.Rounded())
}
