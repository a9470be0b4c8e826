/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, input validation, and interface
  defaults, then delegates to the pure engine functions.

ENDPOINTS:
  Calculations:
    POST /api/calculations/salary        Monthly net-pay settlement
    POST /api/calculations/vacation      Vacation settlement
    POST /api/calculations/overtime      Overtime pricing
    POST /api/calculations/termination   Termination severance
    POST /api/calculations/contribution  Raw INSS + IRRF lookups

  Reference data:
    GET  /api/tables                     Embedded statutory tables
    GET  /api/health                     Liveness

VALIDATION:
  The engine is a total pure function over pre-validated inputs and
  performs no guarding of its own, so EVERYTHING is checked here:
  non-negative amounts, positive monthly hours, vacation days within
  1-30, parseable ISO dates, and termination type membership. Invalid
  input never reaches the engine.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, malformed JSON
  - 404: Unknown route (chi default)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - payroll: The calculation engine
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// Handler holds the HTTP handlers. The engine is stateless, so there are
// no dependencies to carry; the struct exists to group the methods the
// router wires up.
type Handler struct{}

// NewHandler creates the API handler.
func NewHandler() *Handler {
	return &Handler{}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// SettleSalary computes a monthly net-pay breakdown.
// POST /api/calculations/salary
func (h *Handler) SettleSalary(w http.ResponseWriter, r *http.Request) {
	var req SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := firstErr(
		nonNegative("gross_salary", req.GrossSalary),
		nonNegativeInt("dependents", req.Dependents),
		nonNegative("other_discounts", req.OtherDiscounts),
	); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	res := payroll.SettleSalary(payroll.SalaryInput{
		GrossSalary:    dec(req.GrossSalary),
		Dependents:     req.Dependents,
		OtherDiscounts: dec(req.OtherDiscounts),
	})

	writeJSON(w, http.StatusOK, toSalaryResponse(res))
}

// SettleVacation computes a vacation settlement.
// POST /api/calculations/vacation
func (h *Handler) SettleVacation(w http.ResponseWriter, r *http.Request) {
	var req VacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	days := 30
	if req.Days != nil {
		days = *req.Days
	}

	if err := firstErr(
		nonNegative("salary", req.Salary),
		intInRange("days", days, 1, 30),
		nonNegativeInt("dependents", req.Dependents),
		nonNegativeInt("unused_vacation_days", req.UnusedVacationDays),
		nonNegative("bonuses", req.Bonuses),
	); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	res := payroll.SettleVacation(payroll.VacationInput{
		Salary:             dec(req.Salary),
		Days:               days,
		SellTenDays:        req.SellTenDays,
		Dependents:         req.Dependents,
		UnusedVacationDays: req.UnusedVacationDays,
		Bonuses:            dec(req.Bonuses),
	})

	writeJSON(w, http.StatusOK, toVacationResponse(res))
}

// SettleOvertime prices overtime hours.
// POST /api/calculations/overtime
func (h *Handler) SettleOvertime(w http.ResponseWriter, r *http.Request) {
	var req OvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	percentage := 50.0
	if req.Percentage != nil {
		percentage = *req.Percentage
	}

	if err := firstErr(
		nonNegative("salary", req.Salary),
		positive("monthly_hours", req.MonthlyHours),
		nonNegative("overtime_hours", req.OvertimeHours),
		positive("percentage", percentage),
	); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	res := payroll.SettleOvertime(payroll.OvertimeInput{
		Salary:        dec(req.Salary),
		MonthlyHours:  dec(req.MonthlyHours),
		OvertimeHours: dec(req.OvertimeHours),
		Percent:       dec(percentage),
	})

	writeJSON(w, http.StatusOK, toOvertimeResponse(res))
}

// SettleTermination computes a termination severance settlement.
// POST /api/calculations/termination
func (h *Handler) SettleTermination(w http.ResponseWriter, r *http.Request) {
	var req TerminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date format (use YYYY-MM-DD)", err)
		return
	}

	terminationType := payroll.TerminationType(req.Type)
	if !terminationType.Valid() {
		writeError(w, http.StatusBadRequest, "Validation failed",
			fmt.Errorf("unknown termination type %q", req.Type))
		return
	}

	if err := firstErr(
		nonNegative("salary", req.Salary),
		nonNegative("fgts_balance", req.FGTSBalance),
		nonNegativeInt("unused_vacation_days", req.UnusedVacationDays),
		nonNegative("bonuses", req.Bonuses),
	); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	res := payroll.SettleTermination(payroll.TerminationInput{
		Salary:             dec(req.Salary),
		StartDate:          startDate,
		EndDate:            endDate,
		Type:               terminationType,
		FGTSBalance:        dec(req.FGTSBalance),
		UnusedVacationDays: req.UnusedVacationDays,
		Bonuses:            dec(req.Bonuses),
	})

	writeJSON(w, http.StatusOK, toTerminationResponse(res))
}

// LookupTaxes runs both raw table lookups for a base.
// POST /api/calculations/contribution
func (h *Handler) LookupTaxes(w http.ResponseWriter, r *http.Request) {
	var req TaxLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := firstErr(
		nonNegative("base", req.Base),
		nonNegativeInt("dependents", req.Dependents),
	); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	base := dec(req.Base)
	inss := payroll.Contribution(base)
	irrf := payroll.IncomeTax(base, inss, req.Dependents)

	writeJSON(w, http.StatusOK, TaxLookupResponse{
		Base: req.Base,
		INSS: inss.InexactFloat64(),
		IRRF: irrf.InexactFloat64(),
	})
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

// GetTables returns the embedded statutory tables.
// GET /api/tables
func (h *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TablesResponse{
		INSS: toTierDTOs(payroll.INSSTable2024()),
		IRRF: toTierDTOs(payroll.IRRFTable2024()),
	})
}

// Health is the liveness endpoint.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// VALIDATION HELPERS
// =============================================================================

func nonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %v", name, v)
	}
	return nil
}

func nonNegativeInt(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must be non-negative, got %d", name, v)
	}
	return nil
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, v)
	}
	return nil
}

func intInRange(name string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, v)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
