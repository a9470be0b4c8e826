/*
vacation.go - Paid vacation settlement

TAX BASE:
  Only the current-period rest days and their constitutional 1/3 bonus are
  subject to INSS/IRRF. Expired/carried vacation days and the sold-days
  allowance (abono pecuniario) are exempt in this model; they enter the
  gross and net totals untaxed, priced at the same daily rate.
*/
package payroll

import "github.com/shopspring/decimal"

// SettleVacation computes a vacation settlement. Zero Days means the
// default of 30 rest days.
func SettleVacation(in VacationInput) VacationResult {
	days := in.Days
	if days == 0 {
		days = 30
	}

	base := in.Salary.Add(in.Bonuses)
	dailyRate := base.Div(thirty)

	// Current period: rest days plus the constitutional 1/3.
	vacationValue := dailyRate.Mul(decimal.NewFromInt(int64(days)))
	oneThirdBonus := vacationValue.Div(three)

	// Expired/carried period, same daily rate, never re-taxed.
	unusedValue := dailyRate.Mul(decimal.NewFromInt(int64(in.UnusedVacationDays)))
	unusedOneThird := unusedValue.Div(three)

	// Sold-days allowance: the statutory right to cash out 10 days.
	abono := decimal.Zero
	abonoOneThird := decimal.Zero
	if in.SellTenDays {
		abono = dailyRate.Mul(decimal.NewFromInt(10))
		abonoOneThird = abono.Div(three)
	}

	taxBase := vacationValue.Add(oneThirdBonus)
	inss := Contribution(taxBase)
	irrf := IncomeTax(taxBase, inss, in.Dependents)

	untaxed := unusedValue.Add(unusedOneThird).Add(abono).Add(abonoOneThird)
	grossTotal := taxBase.Add(untaxed)
	netTotal := taxBase.Sub(inss).Sub(irrf).Add(untaxed)

	return VacationResult{
		BaseSalary:             base,
		VacationValue:          vacationValue,
		OneThirdBonus:          oneThirdBonus,
		AbonoPecuniario:        abono,
		AbonoOneThird:          abonoOneThird,
		UnusedVacationValue:    unusedValue,
		UnusedVacationOneThird: unusedOneThird,
		GrossTotal:             grossTotal,
		INSS:                   inss,
		IRRF:                   irrf,
		NetTotal:               netTotal,
	}
}
