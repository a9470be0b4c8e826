// Package payroll implements Brazilian CLT payroll settlements.
// It uses the bracket evaluator with the embedded 2024/2025 statutory
// tables; every calculator is a pure function of its input struct.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TERMINATION TYPE
// =============================================================================

// TerminationType selects the notice-period and severance-fund penalty
// policy applied to a termination settlement. Closed enumeration: exactly
// four variants, no fallthrough behavior beyond zero indemnities.
type TerminationType string

const (
	// TerminationWithoutJustCause: employer-initiated dismissal. Full
	// month of notice indemnified plus 40% penalty on the fund balance.
	TerminationWithoutJustCause TerminationType = "without-just-cause"

	// TerminationJustCause: dismissal for cause. No notice, no penalty.
	TerminationJustCause TerminationType = "just-cause"

	// TerminationResignation: employee-initiated. No notice, no penalty.
	TerminationResignation TerminationType = "employee-resignation"

	// TerminationMutualAgreement: consensual exit. Half notice, 20% penalty.
	TerminationMutualAgreement TerminationType = "mutual-agreement"
)

// Valid reports whether t is one of the four variants.
func (t TerminationType) Valid() bool {
	switch t {
	case TerminationWithoutJustCause, TerminationJustCause,
		TerminationResignation, TerminationMutualAgreement:
		return true
	}
	return false
}

// =============================================================================
// INPUTS - Zero values stand in for the reference interface defaults
// =============================================================================

// SalaryInput feeds SettleSalary. All amounts pre-validated non-negative.
type SalaryInput struct {
	GrossSalary    decimal.Decimal
	Dependents     int
	OtherDiscounts decimal.Decimal
}

// OvertimeInput feeds SettleOvertime. MonthlyHours must be positive;
// the calculator performs no guard.
type OvertimeInput struct {
	Salary        decimal.Decimal
	MonthlyHours  decimal.Decimal
	OvertimeHours decimal.Decimal

	// Percent is the surcharge percentage. Zero means the statutory
	// default of 50 (a 50% surcharge over the hourly rate).
	Percent decimal.Decimal
}

// VacationInput feeds SettleVacation.
type VacationInput struct {
	Salary decimal.Decimal

	// Days is the number of current-period rest days taken (1-30).
	// Zero means the default of 30.
	Days int

	// SellTenDays cashes out 10 days instead of resting them.
	SellTenDays bool

	Dependents int

	// UnusedVacationDays are expired/carried days paid out untaxed.
	UnusedVacationDays int

	// Bonuses are added to the salary before the daily rate is derived.
	Bonuses decimal.Decimal
}

// TerminationInput feeds SettleTermination. EndDate may precede StartDate;
// the elapsed-day count uses the absolute difference.
type TerminationInput struct {
	Salary    decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Type      TerminationType

	FGTSBalance        decimal.Decimal
	UnusedVacationDays int
	Bonuses            decimal.Decimal
}

// =============================================================================
// RESULTS - Fixed-shape records; optional components are present with zero
// =============================================================================

// SalaryResult is a monthly net-pay breakdown.
// Invariant: NetSalary = GrossSalary - INSS - IRRF - otherDiscounts and
// Discounts = INSS + IRRF + otherDiscounts.
type SalaryResult struct {
	GrossSalary decimal.Decimal
	INSS        decimal.Decimal
	IRRF        decimal.Decimal
	FGTS        decimal.Decimal
	Discounts   decimal.Decimal
	NetSalary   decimal.Decimal
}

// OvertimeResult is the priced overtime. TotalValue equals OvertimeValue.
type OvertimeResult struct {
	HourlyRate    decimal.Decimal
	OvertimeValue decimal.Decimal
	TotalValue    decimal.Decimal
}

// VacationResult is a vacation settlement. INSS/IRRF are computed only on
// the current-period vacation plus its 1/3 bonus; unused-vacation and
// sold-days amounts enter GrossTotal/NetTotal untaxed.
type VacationResult struct {
	BaseSalary    decimal.Decimal
	VacationValue decimal.Decimal
	OneThirdBonus decimal.Decimal

	AbonoPecuniario decimal.Decimal
	AbonoOneThird   decimal.Decimal

	UnusedVacationValue    decimal.Decimal
	UnusedVacationOneThird decimal.Decimal

	GrossTotal decimal.Decimal
	INSS       decimal.Decimal
	IRRF       decimal.Decimal
	NetTotal   decimal.Decimal
}

// TerminationResult is a severance settlement. INSS/IRRF are computed only
// on SalaryBalance + ProportionalThirteenth.
type TerminationResult struct {
	SalaryBalance          decimal.Decimal
	ProportionalThirteenth decimal.Decimal
	ProportionalVacation   decimal.Decimal
	VacationOneThird       decimal.Decimal

	UnusedVacationValue    decimal.Decimal
	UnusedVacationOneThird decimal.Decimal

	NoticePeriod decimal.Decimal
	FGTSFine     decimal.Decimal

	GrossTotal decimal.Decimal
	INSS       decimal.Decimal
	IRRF       decimal.Decimal
	NetTotal   decimal.Decimal
}
