package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// 13TH-SALARY PRORATION (calendar months)
// =============================================================================

func TestThirteenthSalaryMonths_SameYear(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"start on/before the 15th widens", date(2024, time.January, 10), date(2024, time.June, 20), 6},
		{"start after the 15th does not", date(2024, time.January, 20), date(2024, time.June, 20), 5},
		{"end before the 15th narrows", date(2024, time.January, 10), date(2024, time.June, 10), 5},
		{"short stint inside one month", date(2024, time.March, 1), date(2024, time.March, 10), 0},
		{"full month", date(2024, time.March, 1), date(2024, time.March, 31), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, payroll.ThirteenthSalaryMonths(tc.start, tc.end))
		})
	}
}

func TestThirteenthSalaryMonths_CrossYear(t *testing.T) {
	// Crossing a year boundary, only the end year's months count.
	assert.Equal(t, 6, payroll.ThirteenthSalaryMonths(date(2022, time.May, 1), date(2024, time.June, 20)))
	assert.Equal(t, 5, payroll.ThirteenthSalaryMonths(date(2022, time.May, 1), date(2024, time.June, 10)))
	assert.Equal(t, 0, payroll.ThirteenthSalaryMonths(date(2023, time.November, 3), date(2024, time.January, 5)))
}

func TestThirteenthSalaryMonths_NeverNegative(t *testing.T) {
	// Reversed range inside one year would count negative calendar months;
	// the clamp keeps the entitlement at zero.
	assert.Equal(t, 0, payroll.ThirteenthSalaryMonths(date(2024, time.June, 20), date(2024, time.January, 5)))
}

// =============================================================================
// VACATION PRORATION (elapsed 30-day units)
// =============================================================================

func TestProportionalVacationMonths(t *testing.T) {
	cases := []struct {
		days, want int
	}{
		{0, 0},
		{14, 0},
		{15, 1},  // remainder of 15 rounds up
		{29, 1},
		{30, 1},
		{44, 1},
		{45, 2},
		{162, 5},
		{165, 6},
		{360, 0}, // full cycle wraps: settled as unused vacation instead
		{375, 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, payroll.ProportionalVacationMonths(tc.days), "days=%d", tc.days)
	}
}

// =============================================================================
// FULL SETTLEMENT
// =============================================================================

func TestSettleTermination_WithoutJustCause(t *testing.T) {
	// GIVEN: Salary 3000, Jan 10 to Jun 20 2024, dismissal without just
	//        cause, 5000 in the severance fund
	// WHEN: Settling the termination
	// THEN:
	//   salary balance   = 100/day * 20 (end day)        = 2000
	//   13th months      = (6-1)+1 (start day <= 15)     = 6 -> 1500
	//   elapsed days     = 162 -> 5 vacation months      -> 1250 + 416.67
	//   notice period    = full base                     = 3000
	//   fund penalty     = 40% of 5000                   = 2000
	//   withholdings on 2000 + 1500 = 3500 only

	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:      d("3000"),
		StartDate:   date(2024, time.January, 10),
		EndDate:     date(2024, time.June, 20),
		Type:        payroll.TerminationWithoutJustCause,
		FGTSBalance: d("5000"),
	})

	assertDecimal(t, "2000", res.SalaryBalance)
	assertDecimal(t, "1500", res.ProportionalThirteenth)
	assertDecimal(t, "1250", res.ProportionalVacation)
	assert.InDelta(t, 416.67, res.VacationOneThird.InexactFloat64(), 0.01)
	assertDecimal(t, "3000", res.NoticePeriod)
	assertDecimal(t, "2000", res.FGTSFine)

	assertDecimal(t, "318.8184", res.INSS)
	assertDecimal(t, "95.73724", res.IRRF)

	assert.InDelta(t, 10166.67, res.GrossTotal.InexactFloat64(), 0.01)
	assert.InDelta(t, 9752.11, res.NetTotal.InexactFloat64(), 0.01)
}

func TestSettleTermination_TypeMatrix(t *testing.T) {
	base := payroll.TerminationInput{
		Salary:      d("3000"),
		StartDate:   date(2024, time.January, 10),
		EndDate:     date(2024, time.June, 20),
		FGTSBalance: d("5000"),
	}

	cases := []struct {
		typ        payroll.TerminationType
		notice     string
		fine       string
	}{
		{payroll.TerminationWithoutJustCause, "3000", "2000"},
		{payroll.TerminationJustCause, "0", "0"},
		{payroll.TerminationResignation, "0", "0"},
		{payroll.TerminationMutualAgreement, "1500", "1000"},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			in := base
			in.Type = tc.typ
			res := payroll.SettleTermination(in)
			assertDecimal(t, tc.notice, res.NoticePeriod)
			assertDecimal(t, tc.fine, res.FGTSFine)
		})
	}
}

func TestSettleTermination_NetEqualsGrossMinusWithholdings(t *testing.T) {
	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:             d("4500"),
		StartDate:          date(2023, time.March, 3),
		EndDate:            date(2024, time.October, 28),
		Type:               payroll.TerminationWithoutJustCause,
		FGTSBalance:        d("12000"),
		UnusedVacationDays: 10,
		Bonuses:            d("250"),
	})

	want := res.GrossTotal.Sub(res.INSS).Sub(res.IRRF)
	assert.True(t, res.NetTotal.Equal(want))
}

func TestSettleTermination_UnusedVacationIsUntaxed(t *testing.T) {
	// GIVEN: 10 unused vacation days on top of the settlement
	// WHEN: Settling with and without them
	// THEN: Gross/net grow by 10 * dailyRate * 4/3; withholdings hold

	in := payroll.TerminationInput{
		Salary:    d("3000"),
		StartDate: date(2024, time.January, 10),
		EndDate:   date(2024, time.June, 20),
		Type:      payroll.TerminationResignation,
	}
	plain := payroll.SettleTermination(in)

	in.UnusedVacationDays = 10
	withUnused := payroll.SettleTermination(in)

	assertDecimal(t, "1000", withUnused.UnusedVacationValue)
	assert.True(t, withUnused.INSS.Equal(plain.INSS))
	assert.True(t, withUnused.IRRF.Equal(plain.IRRF))

	delta := withUnused.UnusedVacationValue.Add(withUnused.UnusedVacationOneThird)
	assert.True(t, withUnused.GrossTotal.Sub(plain.GrossTotal).Equal(delta))
}

func TestSettleTermination_BonusesJoinTheBase(t *testing.T) {
	// Notice indemnity for dismissal without just cause is the full base,
	// salary plus bonuses.
	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:    d("2800"),
		Bonuses:   d("200"),
		StartDate: date(2024, time.January, 10),
		EndDate:   date(2024, time.June, 20),
		Type:      payroll.TerminationWithoutJustCause,
	})
	assertDecimal(t, "3000", res.NoticePeriod)
	assertDecimal(t, "2000", res.SalaryBalance)
}

func TestSettleTermination_ReversedDates(t *testing.T) {
	// GIVEN: StartDate after EndDate
	// WHEN: Settling
	// THEN: The elapsed-day count is absolute (still 162 days -> 5
	//       vacation months) while the calendar-field 13th proration
	//       clamps at zero. Asymmetric on purpose; do not "fix".

	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:    d("3000"),
		StartDate: date(2024, time.June, 20),
		EndDate:   date(2024, time.January, 10),
		Type:      payroll.TerminationResignation,
	})

	assertDecimal(t, "1000", res.SalaryBalance) // end day is the 10th
	assertDecimal(t, "0", res.ProportionalThirteenth)
	assertDecimal(t, "1250", res.ProportionalVacation)
}

func TestSettleTermination_ZeroFundBalance(t *testing.T) {
	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:    d("3000"),
		StartDate: date(2024, time.January, 10),
		EndDate:   date(2024, time.June, 20),
		Type:      payroll.TerminationWithoutJustCause,
	})
	assert.True(t, res.FGTSFine.IsZero())
	assert.False(t, res.NoticePeriod.IsZero())
}
