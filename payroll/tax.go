package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/bracket"
)

// The engine evaluates the statutory tables in place; they are built once.
var (
	inssTable = INSSTable2024()
	irrfTable = IRRFTable2024()
)

// Contribution computes the INSS withholding for a non-negative base.
// Total function: every base maps to exactly one tier, with the fixed
// ceiling above the last break point.
func Contribution(base decimal.Decimal) decimal.Decimal {
	return inssTable.Evaluate(base)
}

// IncomeTax computes the IRRF withholding on base net of the contribution
// and a flat allowance per dependent. The taxable base may come out
// negative; it then resolves to the zero tier. The per-tier affine formula
// is intentionally not floored at zero (only tier 1 is exactly zero) -
// this matches the exact statutory formula.
func IncomeTax(base, contribution decimal.Decimal, dependents int) decimal.Decimal {
	taxable := base.
		Sub(contribution).
		Sub(dependentAllowance.Mul(decimal.NewFromInt(int64(dependents))))
	return irrfTable.Evaluate(taxable)
}

// Tables returns the embedded statutory tables, keyed by name, so callers
// can render them. Single source of truth: these are the same records the
// lookups evaluate.
func Tables() map[string]bracket.Table {
	return map[string]bracket.Table{
		"inss": INSSTable2024(),
		"irrf": IRRFTable2024(),
	}
}
