package payroll

// SettleOvertime converts a monthly rate to an hourly rate and applies the
// surcharge percentage (zero Percent means the statutory 50%). MonthlyHours
// must be positive; the caller guarantees it, no guard here.
func SettleOvertime(in OvertimeInput) OvertimeResult {
	percent := in.Percent
	if percent.IsZero() {
		percent = d("50")
	}

	hourlyRate := in.Salary.Div(in.MonthlyHours)
	overtimeRate := hourlyRate.Mul(hundred.Add(percent)).Div(hundred)
	overtimeValue := overtimeRate.Mul(in.OvertimeHours)

	return OvertimeResult{
		HourlyRate:    hourlyRate,
		OvertimeValue: overtimeValue,
		TotalValue:    overtimeValue,
	}
}
