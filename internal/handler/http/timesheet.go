package http

import (
	"log/slog"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/timesheet"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// targetEmployeeID resolves whose timesheet is requested: admins may pass an
// employee id in the path, everyone else gets their own.
func targetEmployeeID(r *http.Request) (string, error) {
	if claimIsAdmin(r) {
		if id := chi.URLParam(r, "employeeID"); id != "" {
			return id, nil
		}
	}
	return claimEmployeeID(r)
}

// GetDay implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID, err := targetEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date := chi.URLParam(r, "date")

	summary, err := h.timesheetService.GetDaySummary(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("GetDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetPeriod implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	employeeID, err := targetEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	summary, err := h.timesheetService.GetPeriodSummary(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		slog.Error("GetPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
