// Package amortization computes equal-payment (annuity) repayment schedules.
// Generation is pure: same inputs, same schedule, no side effects.
package amortization

import (
	"time"

	"github.com/shopspring/decimal"

	"loanledger-backend/internal/domain/errs"
)

var one = decimal.NewFromInt(1)

// Line is one scheduled installment before it is persisted.
type Line struct {
	Sequence  int
	DueDate   time.Time
	AmountDue decimal.Decimal
}

// Schedule is the full amortization result. Payment is the regular EMI;
// the last line absorbs all rounding so Σ AmountDue == TotalDue exactly.
type Schedule struct {
	Payment  decimal.Decimal
	TotalDue decimal.Decimal
	Lines    []Line
}

// MonthlyPayment returns the EMI for principal P at annualRatePct percent
// over termMonths, rounded half-up to the minor unit:
// A = P·i·(1+i)^n / ((1+i)^n − 1) with i = r/1200, or P/n at zero rate.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if err := check(principal, annualRatePct, termMonths); err != nil {
		return decimal.Zero, err
	}
	n := decimal.NewFromInt(int64(termMonths))
	i := annualRatePct.Div(decimal.NewFromInt(1200))
	if i.IsZero() {
		return principal.Div(n).Round(2), nil
	}
	pow := one.Add(i).Pow(n) // (1+i)^n, integer exponent
	return principal.Mul(i).Mul(pow).Div(pow.Sub(one)).Round(2), nil
}

// Generate produces the installment sequence for a loan disbursed on
// disbursedOn. Interest accrues on the declining balance; every installment
// is the rounded EMI except the last, which pays off the remaining balance
// plus its interest and thereby reconciles all rounding.
func Generate(principal, annualRatePct decimal.Decimal, termMonths int, disbursedOn time.Time) (*Schedule, error) {
	emi, err := MonthlyPayment(principal, annualRatePct, termMonths)
	if err != nil {
		return nil, err
	}
	i := annualRatePct.Div(decimal.NewFromInt(1200))

	s := &Schedule{Payment: emi, Lines: make([]Line, 0, termMonths)}
	balance := principal
	total := decimal.Zero
	for k := 1; k <= termMonths; k++ {
		interest := balance.Mul(i).Round(2)
		var due decimal.Decimal
		if k == termMonths {
			due = balance.Add(interest)
		} else {
			due = emi
			balance = balance.Sub(emi.Sub(interest))
		}
		total = total.Add(due)
		s.Lines = append(s.Lines, Line{
			Sequence:  k,
			DueDate:   AddMonths(disbursedOn, k),
			AmountDue: due,
		})
	}
	s.TotalDue = total
	return s, nil
}

func check(principal, annualRatePct decimal.Decimal, termMonths int) error {
	if principal.Sign() <= 0 {
		return errs.Validationf("principal must be positive, got %s", principal)
	}
	if annualRatePct.Sign() < 0 {
		return errs.Validationf("interest rate must not be negative, got %s", annualRatePct)
	}
	if termMonths <= 0 {
		return errs.Validationf("term must be at least 1 month, got %d", termMonths)
	}
	return nil
}

// AddMonths advances t by n calendar months, clamping to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29). Time of day is dropped: due
// dates are dates.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
