package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/payroll"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Compute implements PayrollHandler.
func (h *PayrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	employeeID, err := targetEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, payroll.ErrInvalidPeriod)
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.HandleError(w, payroll.ErrInvalidPeriod)
		return
	}

	result, err := h.payrollService.ComputePayroll(r.Context(), employeeID, month, year)
	if err != nil {
		slog.Error("Compute service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
