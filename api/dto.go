/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the decimal-based engine types from the external API contract: wire
  amounts are float64 and only become decimals after validation.

NAMING CONVENTION:
  - *Request:  Request body types from clients
  - *Response: Response types returned to clients

OPTIONAL FIELDS:
  Pointer fields distinguish "omitted" from "zero" where the reference
  interface has a non-zero default (vacation days, overtime percentage).
  Omitted means the statutory default; an explicit value is validated.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/types.go: The engine-side input/result structs
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/bracket"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// SalaryRequest is the request for a monthly salary settlement.
type SalaryRequest struct {
	GrossSalary    float64 `json:"gross_salary"`
	Dependents     int     `json:"dependents"`
	OtherDiscounts float64 `json:"other_discounts"`
}

// SalaryResponse is the monthly net-pay breakdown.
type SalaryResponse struct {
	GrossSalary float64 `json:"gross_salary"`
	INSS        float64 `json:"inss"`
	IRRF        float64 `json:"irrf"`
	FGTS        float64 `json:"fgts"`
	Discounts   float64 `json:"discounts"`
	NetSalary   float64 `json:"net_salary"`
}

// VacationRequest is the request for a vacation settlement.
type VacationRequest struct {
	Salary             float64 `json:"salary"`
	Days               *int    `json:"days,omitempty"` // nil = 30
	SellTenDays        bool    `json:"sell_ten_days"`
	Dependents         int     `json:"dependents"`
	UnusedVacationDays int     `json:"unused_vacation_days"`
	Bonuses            float64 `json:"bonuses"`
}

// VacationResponse is the vacation settlement breakdown.
type VacationResponse struct {
	BaseSalary             float64 `json:"base_salary"`
	VacationValue          float64 `json:"vacation_value"`
	OneThirdBonus          float64 `json:"one_third_bonus"`
	AbonoPecuniario        float64 `json:"abono_pecuniario"`
	AbonoOneThird          float64 `json:"abono_one_third"`
	UnusedVacationValue    float64 `json:"unused_vacation_value"`
	UnusedVacationOneThird float64 `json:"unused_vacation_one_third"`
	GrossTotal             float64 `json:"gross_total"`
	INSS                   float64 `json:"inss"`
	IRRF                   float64 `json:"irrf"`
	NetTotal               float64 `json:"net_total"`
}

// OvertimeRequest is the request to price overtime hours.
type OvertimeRequest struct {
	Salary        float64  `json:"salary"`
	MonthlyHours  float64  `json:"monthly_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
	Percentage    *float64 `json:"percentage,omitempty"` // nil = 50
}

// OvertimeResponse is the priced overtime.
type OvertimeResponse struct {
	HourlyRate    float64 `json:"hourly_rate"`
	OvertimeValue float64 `json:"overtime_value"`
	TotalValue    float64 `json:"total_value"`
}

// TerminationRequest is the request for a termination settlement.
// Dates are ISO (YYYY-MM-DD); type is one of the four variants.
type TerminationRequest struct {
	Salary             float64 `json:"salary"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Type               string  `json:"type"`
	FGTSBalance        float64 `json:"fgts_balance"`
	UnusedVacationDays int     `json:"unused_vacation_days"`
	Bonuses            float64 `json:"bonuses"`
}

// TerminationResponse is the severance settlement breakdown.
type TerminationResponse struct {
	SalaryBalance          float64 `json:"salary_balance"`
	ProportionalThirteenth float64 `json:"proportional_thirteenth"`
	ProportionalVacation   float64 `json:"proportional_vacation"`
	VacationOneThird       float64 `json:"vacation_one_third"`
	UnusedVacationValue    float64 `json:"unused_vacation_value"`
	UnusedVacationOneThird float64 `json:"unused_vacation_one_third"`
	NoticePeriod           float64 `json:"notice_period"`
	FGTSFine               float64 `json:"fgts_fine"`
	GrossTotal             float64 `json:"gross_total"`
	INSS                   float64 `json:"inss"`
	IRRF                   float64 `json:"irrf"`
	NetTotal               float64 `json:"net_total"`
}

// TaxLookupRequest is the request for raw table lookups.
type TaxLookupRequest struct {
	Base       float64 `json:"base"`
	Dependents int     `json:"dependents"`
}

// TaxLookupResponse carries both progressive lookups for a base.
type TaxLookupResponse struct {
	Base float64 `json:"base"`
	INSS float64 `json:"inss"`
	IRRF float64 `json:"irrf"`
}

// TierDTO is one row of a statutory table. UpperBound is nil for the
// final open-ended tier.
type TierDTO struct {
	UpperBound *float64 `json:"upper_bound,omitempty"`
	Rate       float64  `json:"rate"`
	Offset     float64  `json:"offset"`
}

// TablesResponse exposes the embedded statutory tables for rendering.
type TablesResponse struct {
	INSS []TierDTO `json:"inss"`
	IRRF []TierDTO `json:"irrf"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func toSalaryResponse(res payroll.SalaryResult) SalaryResponse {
	return SalaryResponse{
		GrossSalary: res.GrossSalary.InexactFloat64(),
		INSS:        res.INSS.InexactFloat64(),
		IRRF:        res.IRRF.InexactFloat64(),
		FGTS:        res.FGTS.InexactFloat64(),
		Discounts:   res.Discounts.InexactFloat64(),
		NetSalary:   res.NetSalary.InexactFloat64(),
	}
}

func toVacationResponse(res payroll.VacationResult) VacationResponse {
	return VacationResponse{
		BaseSalary:             res.BaseSalary.InexactFloat64(),
		VacationValue:          res.VacationValue.InexactFloat64(),
		OneThirdBonus:          res.OneThirdBonus.InexactFloat64(),
		AbonoPecuniario:        res.AbonoPecuniario.InexactFloat64(),
		AbonoOneThird:          res.AbonoOneThird.InexactFloat64(),
		UnusedVacationValue:    res.UnusedVacationValue.InexactFloat64(),
		UnusedVacationOneThird: res.UnusedVacationOneThird.InexactFloat64(),
		GrossTotal:             res.GrossTotal.InexactFloat64(),
		INSS:                   res.INSS.InexactFloat64(),
		IRRF:                   res.IRRF.InexactFloat64(),
		NetTotal:               res.NetTotal.InexactFloat64(),
	}
}

func toOvertimeResponse(res payroll.OvertimeResult) OvertimeResponse {
	return OvertimeResponse{
		HourlyRate:    res.HourlyRate.InexactFloat64(),
		OvertimeValue: res.OvertimeValue.InexactFloat64(),
		TotalValue:    res.TotalValue.InexactFloat64(),
	}
}

func toTerminationResponse(res payroll.TerminationResult) TerminationResponse {
	return TerminationResponse{
		SalaryBalance:          res.SalaryBalance.InexactFloat64(),
		ProportionalThirteenth: res.ProportionalThirteenth.InexactFloat64(),
		ProportionalVacation:   res.ProportionalVacation.InexactFloat64(),
		VacationOneThird:       res.VacationOneThird.InexactFloat64(),
		UnusedVacationValue:    res.UnusedVacationValue.InexactFloat64(),
		UnusedVacationOneThird: res.UnusedVacationOneThird.InexactFloat64(),
		NoticePeriod:           res.NoticePeriod.InexactFloat64(),
		FGTSFine:               res.FGTSFine.InexactFloat64(),
		GrossTotal:             res.GrossTotal.InexactFloat64(),
		INSS:                   res.INSS.InexactFloat64(),
		IRRF:                   res.IRRF.InexactFloat64(),
		NetTotal:               res.NetTotal.InexactFloat64(),
	}
}

func toTierDTOs(table bracket.Table) []TierDTO {
	dtos := make([]TierDTO, len(table))
	for i, tier := range table {
		dto := TierDTO{
			Rate:   tier.Rate.InexactFloat64(),
			Offset: tier.Offset.InexactFloat64(),
		}
		if !tier.Open {
			upper := tier.UpperBound.InexactFloat64()
			dto.UpperBound = &upper
		}
		dtos[i] = dto
	}
	return dtos
}
