/*
tables.go - Embedded 2024/2025 statutory tables

PURPOSE:
  Expresses the INSS contribution table and the IRRF withholding table as
  bracket.Table values. These are the only constants in the engine; the
  calculators never duplicate the cascading if/else chain.

NORMALIZATION:
  The published INSS table is stepped/additive:

    base <= 1412.00   base * 0.075
    base <= 2666.68   (base - 1412.00) * 0.09 + 105.90
    base <= 4000.03   (base - 2666.68) * 0.12 + 218.82
    base <= 7786.02   (base - 4000.03) * 0.14 + 378.82
    above             fixed ceiling 908.85

  Each stepped row collapses to the affine form base*rate - offset with
  offset = lowerBound*rate - cumulative, which is exact under decimal
  arithmetic (e.g. 1412.00*0.09 - 105.90 = 21.18). The ceiling is a
  zero-rate tier with offset -908.85.

  The IRRF table is published directly in affine form and carries no
  per-tier zero floor: only tier 1 is exactly zero. Do not clamp.

SEE ALSO:
  - tax.go: The two lookups over these tables
  - bracket/bracket.go: Tier selection and pricing
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/bracket"
)

var d = bracket.MustDecimal

// Shared statutory constants.
var (
	// fgtsRate is the employer severance-fund deposit, 8% of gross.
	fgtsRate = d("0.08")

	// dependentAllowance is the flat IRRF deduction per dependent.
	dependentAllowance = d("189.59")

	three   = decimal.NewFromInt(3)
	twelve  = decimal.NewFromInt(12)
	thirty  = decimal.NewFromInt(30)
	hundred = decimal.NewFromInt(100)
)

// INSSTable2024 returns the progressive contribution table in force for
// 2024/2025, normalized to affine tiers.
func INSSTable2024() bracket.Table {
	return bracket.Table{
		{UpperBound: d("1412.00"), Rate: d("0.075"), Offset: decimal.Zero},
		{UpperBound: d("2666.68"), Rate: d("0.09"), Offset: d("21.18")},
		{UpperBound: d("4000.03"), Rate: d("0.12"), Offset: d("101.1816")},
		{UpperBound: d("7786.02"), Rate: d("0.14"), Offset: d("181.1842")},
		{Open: true, Rate: decimal.Zero, Offset: d("-908.85")},
	}
}

// IRRFTable2024 returns the progressive withholding income-tax table in
// force for 2024/2025. The taxable base may be negative after deductions;
// it then lands in the zero tier.
func IRRFTable2024() bracket.Table {
	return bracket.Table{
		{UpperBound: d("2259.20"), Rate: decimal.Zero, Offset: decimal.Zero},
		{UpperBound: d("2826.65"), Rate: d("0.075"), Offset: d("169.44")},
		{UpperBound: d("3751.05"), Rate: d("0.15"), Offset: d("381.44")},
		{UpperBound: d("4664.68"), Rate: d("0.225"), Offset: d("662.77")},
		{Open: true, Rate: d("0.275"), Offset: d("896.00")},
	}
}
