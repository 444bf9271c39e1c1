package validators

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sammo1235/mortgage-overpayment-calculator/internal/calculations"
	"github.com/sammo1235/mortgage-overpayment-calculator/internal/config"
	"github.com/sammo1235/mortgage-overpayment-calculator/pkg/utils"
)

var (
	// ErrInvalidArgumentCount means too few or too many inputs were supplied.
	ErrInvalidArgumentCount = errors.New("wrong number of arguments")
	// ErrInvalidArgumentFormat means an input is not a number of the required type.
	ErrInvalidArgumentFormat = errors.New("invalid argument format")
	// ErrInvalidArgumentValue means a number is outside the accepted range.
	ErrInvalidArgumentValue = errors.New("invalid argument value")
)

const (
	// RequiredArgs is the number of positional values ParseArgs needs.
	RequiredArgs = 3
	// MaxArgs allows the optional overpayment after the required values.
	MaxArgs = RequiredArgs + 1
)

// ParseArgs reads principal, annual rate, term and an optional overpayment from
// positional arguments. It checks syntax only, see CheckParameters for ranges.
func ParseArgs(args []string) (calculations.LoanParameters, error) {
	var params calculations.LoanParameters

	if len(args) < RequiredArgs {
		return params, fmt.Errorf("%w: want principal, annual rate and term (got %d)",
			ErrInvalidArgumentCount, len(args))
	}
	if len(args) > MaxArgs {
		return params, fmt.Errorf("%w: unexpected argument %q after overpayment (flags go before the values)",
			ErrInvalidArgumentCount, args[MaxArgs])
	}

	var err error
	if params.Principal, err = parseFloat("principal", "starting principal of mortgage must be a float", args[0]); err != nil {
		return params, err
	}
	if params.AnnualRate, err = parseFloat("annual_rate", "annual rate as decimal must be a float", args[1]); err != nil {
		return params, err
	}
	if params.TermPeriods, err = strconv.Atoi(args[2]); err != nil {
		return params, fmt.Errorf("%w: term_periods: term length of mortgage must be an integer, got %q",
			ErrInvalidArgumentFormat, args[2])
	}
	if len(args) > RequiredArgs {
		if params.Overpayment, err = parseFloat("overpayment", "overpayment amount must be a float", args[3]); err != nil {
			return params, err
		}
	}

	return params, nil
}

func parseFloat(name, hint, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s, got %q", ErrInvalidArgumentFormat, name, hint, raw)
	}
	return value, nil
}

// ValidatePositiveNumber checks that value is finite and within [minInclusive, maxInclusive].
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%w: %s: value is not a finite number", ErrInvalidArgumentValue, name)
	}
	if value < minInclusive {
		return fmt.Errorf("%w: %s: value must be >= %g", ErrInvalidArgumentValue, name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%w: %s: value is too large (> %g)", ErrInvalidArgumentValue, name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that value is within [minInclusive, maxInclusive].
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s: value must be in range [%d; %d]",
			ErrInvalidArgumentValue, name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal checks the loan amount; zero is rejected.
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate checks the annual rate, expressed as a decimal fraction.
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate", rate, 0.0, cfg.MaxAnnualRate)
}

// CheckTerm checks the number of payment periods.
func CheckTerm(cfg *config.Config, periods int) error {
	return ValidateIntRange("term_periods", periods, 1, cfg.MaxTermPeriods)
}

// CheckOverpayment checks the extra amount paid each period.
func CheckOverpayment(cfg *config.Config, overpayment float64) error {
	return ValidatePositiveNumber("overpayment", overpayment, 0.0, cfg.MaxOverpayment)
}

// CheckParameters runs every range check, returning the first failure.
func CheckParameters(cfg *config.Config, params calculations.LoanParameters) error {
	if err := CheckPrincipal(cfg, params.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, params.AnnualRate); err != nil {
		return err
	}
	if err := CheckTerm(cfg, params.TermPeriods); err != nil {
		return err
	}
	return CheckOverpayment(cfg, params.Overpayment)
}
