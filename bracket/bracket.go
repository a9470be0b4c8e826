/*
Package bracket provides the progressive bracket table evaluator.

PURPOSE:
  This package contains the domain-agnostic policy for evaluating a
  monotonic, bracket-based progressive table against a base amount.
  Whether computing a social-security contribution or a withholding
  income tax, the same lookup handles tier selection and the tie-break
  rule at tier boundaries.

KEY CONCEPTS:
  - Tier: one row of a progressive table: (upper bound, rate, offset)
  - Table: an ordered sequence of tiers partitioning [0, inf)
  - Evaluate: finds the applicable tier and prices the base against it

TIER SELECTION:
  The lowest tier whose upper bound is >= base applies. Upper bounds are
  INCLUSIVE: a base sitting exactly on a boundary resolves to the lower
  (cheaper) tier, consistent with "<= threshold" table semantics. The
  final tier is open-ended and always matches.

PRICING:
  Each tier is an affine formula: value = base * rate - offset.
  Stepped/additive statutory tables normalize to this form by
  precomputing the offset from the tier's lower break point. A fixed
  ceiling is a zero-rate tier with a negative offset.

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Purity: Evaluate is a total function of (table, base); no state
  3. Single lookup: tables never duplicate the cascading if/else chain

SEE ALSO:
  - payroll/tables.go: The statutory tables expressed as Tables
  - payroll/tax.go: The two lookups built on Evaluate
*/
package bracket

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// TIER - One row of a progressive table
// =============================================================================

// Tier prices bases up to (and including) UpperBound as base*Rate - Offset.
type Tier struct {
	// UpperBound is the inclusive upper limit of this tier.
	// Ignored when Open is true.
	UpperBound decimal.Decimal

	Rate   decimal.Decimal
	Offset decimal.Decimal

	// Open marks the final, unbounded tier. It always matches.
	Open bool
}

// Matches reports whether the base falls into this tier.
func (t Tier) Matches(base decimal.Decimal) bool {
	return t.Open || base.LessThanOrEqual(t.UpperBound)
}

// Value prices the base against this tier's affine formula.
// The per-tier formula is NOT floored at zero: statutory tables rely on
// the exact affine value, and clamping would change boundary behavior.
func (t Tier) Value(base decimal.Decimal) decimal.Decimal {
	return base.Mul(t.Rate).Sub(t.Offset)
}

// =============================================================================
// TABLE - Ordered tiers partitioning [0, inf)
// =============================================================================

// Table is an ordered progressive table. Tiers must be strictly increasing
// by upper bound, with a final open tier so exactly one tier applies to any
// base. Negative bases are not defined behavior for contribution tables but
// fall through to the first tier whose bound they satisfy, which is how the
// income-tax table yields zero for over-deducted bases.
type Table []Tier

// Evaluate returns the tier value for the lowest tier that matches base.
func (tb Table) Evaluate(base decimal.Decimal) decimal.Decimal {
	for _, tier := range tb {
		if tier.Matches(base) {
			return tier.Value(base)
		}
	}
	// Unreachable for well-formed tables (final tier is open).
	return decimal.Zero
}

// WellFormed reports whether the table partitions [0, inf): at least one
// tier, strictly increasing bounds, exactly one open tier and it is last.
func (tb Table) WellFormed() bool {
	if len(tb) == 0 {
		return false
	}
	for i, tier := range tb {
		last := i == len(tb)-1
		if tier.Open != last {
			return false
		}
		if i > 0 && !last && !tier.UpperBound.GreaterThan(tb[i-1].UpperBound) {
			return false
		}
	}
	return true
}

// MustDecimal parses a decimal constant, panicking on malformed input.
// Intended for statutory table literals.
func MustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
