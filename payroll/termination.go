/*
termination.go - Termination severance settlement

PURPOSE:
  Combines day-based proration of the final month's salary balance,
  month-based proration of the 13th salary and vacation entitlements, the
  unused-vacation payout, and the type-dependent notice indemnity and
  severance-fund penalty.

PRORATION:
  Two deliberately separate sub-calculations:
  - ThirteenthSalaryMonths prorates by CALENDAR months of the final year,
    with the day-15 cut on both ends.
  - ProportionalVacationMonths prorates by elapsed 30-day units of the
    whole employment, rounding up from day 15 and wrapping at 12 (a full
    cycle is settled as the separate unused-vacation payout).

TAX BASE:
  Only salaryBalance + proportionalThirteenth is subject to INSS/IRRF,
  with no dependent allowance. Vacation amounts, notice and fund penalty
  are exempt.

REVERSED DATES:
  The elapsed-day count uses the absolute difference, so a reversed range
  still yields a positive day count. The calendar-field month prorations
  are NOT separately absolute-valued; the resulting asymmetry is the
  documented behavior, not a bug to fix.
*/
package payroll

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// SettleTermination computes the severance settlement for an employment
// ending at EndDate under the given termination type.
func SettleTermination(in TerminationInput) TerminationResult {
	base := in.Salary.Add(in.Bonuses)
	dailyRate := base.Div(thirty)
	monthlyTwelfth := base.Div(twelve)

	// 1. Elapsed employment in days (absolute, rounded up).
	totalDays := elapsedDays(in.StartDate, in.EndDate)

	// 2. Salary balance for the partial final month, up to the end-day
	// number.
	salaryBalance := dailyRate.Mul(decimal.NewFromInt(int64(in.EndDate.Day())))

	// 3. 13th salary, prorated by calendar months of the final year.
	thirteenthMonths := ThirteenthSalaryMonths(in.StartDate, in.EndDate)
	thirteenth := monthlyTwelfth.Mul(decimal.NewFromInt(int64(thirteenthMonths)))

	// 4. Proportional vacation, prorated by elapsed 30-day units.
	vacationMonths := ProportionalVacationMonths(totalDays)
	proportionalVacation := monthlyTwelfth.Mul(decimal.NewFromInt(int64(vacationMonths)))
	vacationOneThird := proportionalVacation.Div(three)

	// 5. Unused vacation payout, untaxed, same daily rate.
	unusedValue := dailyRate.Mul(decimal.NewFromInt(int64(in.UnusedVacationDays)))
	unusedOneThird := unusedValue.Div(three)

	// 6. Type-dependent indemnities.
	notice, fine := terminationIndemnities(in.Type, base, in.FGTSBalance)

	// 7. Withholdings on salary balance + 13th only, no dependents.
	taxBase := salaryBalance.Add(thirteenth)
	inss := Contribution(taxBase)
	irrf := IncomeTax(taxBase, inss, 0)

	// 8. Totals.
	grossTotal := salaryBalance.
		Add(thirteenth).
		Add(proportionalVacation).Add(vacationOneThird).
		Add(unusedValue).Add(unusedOneThird).
		Add(notice).
		Add(fine)
	netTotal := grossTotal.Sub(inss).Sub(irrf)

	return TerminationResult{
		SalaryBalance:          salaryBalance,
		ProportionalThirteenth: thirteenth,
		ProportionalVacation:   proportionalVacation,
		VacationOneThird:       vacationOneThird,
		UnusedVacationValue:    unusedValue,
		UnusedVacationOneThird: unusedOneThird,
		NoticePeriod:           notice,
		FGTSFine:               fine,
		GrossTotal:             grossTotal,
		INSS:                   inss,
		IRRF:                   irrf,
		NetTotal:               netTotal,
	}
}

// =============================================================================
// PRORATION SUB-CALCULATIONS
// =============================================================================

// ThirteenthSalaryMonths counts the calendar months of the final year that
// accrue 13th salary. Within a single year, the span of months is widened
// by one when employment started on or before the 15th and narrowed by one
// when it ended before the 15th. Across a year boundary only the end year
// counts: its month number, minus one when the end day is before the 15th.
// Never negative.
func ThirteenthSalaryMonths(start, end time.Time) int {
	var months int
	if start.Year() == end.Year() {
		months = int(end.Month()) - int(start.Month())
		if start.Day() <= 15 {
			months++
		}
		if end.Day() < 15 {
			months--
		}
	} else {
		months = int(end.Month())
		if end.Day() < 15 {
			months--
		}
	}
	if months < 0 {
		months = 0
	}
	return months
}

// ProportionalVacationMonths counts accrued vacation months from the total
// elapsed days: whole 30-day units, one more when the remainder reaches 15
// days, wrapped at 12.
func ProportionalVacationMonths(totalDays int) int {
	months := totalDays / 30
	if totalDays%30 >= 15 {
		months++
	}
	return months % 12
}

// elapsedDays is the absolute difference between the two dates in days,
// rounded up.
func elapsedDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// terminationIndemnities returns the notice-period indemnity and the
// severance-fund penalty for the termination type. Unknown types (never
// produced by validated callers) settle with zero indemnities.
func terminationIndemnities(t TerminationType, base, fgtsBalance decimal.Decimal) (notice, fine decimal.Decimal) {
	switch t {
	case TerminationWithoutJustCause:
		return base, fgtsBalance.Mul(d("0.4"))
	case TerminationMutualAgreement:
		return base.Mul(d("0.5")), fgtsBalance.Mul(d("0.2"))
	default: // just cause, resignation
		return decimal.Zero, decimal.Zero
	}
}
