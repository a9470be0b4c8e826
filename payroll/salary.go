package payroll

// SettleSalary computes the monthly net-pay breakdown: statutory
// withholdings on the gross, the employer fund deposit, and the net after
// other pre-validated discounts.
func SettleSalary(in SalaryInput) SalaryResult {
	inss := Contribution(in.GrossSalary)
	irrf := IncomeTax(in.GrossSalary, inss, in.Dependents)
	fgts := in.GrossSalary.Mul(fgtsRate)

	discounts := inss.Add(irrf).Add(in.OtherDiscounts)

	return SalaryResult{
		GrossSalary: in.GrossSalary,
		INSS:        inss,
		IRRF:        irrf,
		FGTS:        fgts,
		Discounts:   discounts,
		NetSalary:   in.GrossSalary.Sub(discounts),
	}
}
