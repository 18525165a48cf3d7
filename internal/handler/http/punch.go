package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService ledger.PunchService
}

func NewPunchHandler(punchService ledger.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Submit implements PunchHandler. The employee id always comes from the
// token, never from the body: an employee can only punch for themselves.
func (h *PunchHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req ledger.SubmitPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	entry, err := h.punchService.SubmitPunch(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", entry)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := ledger.EntriesFilter{EmployeeID: employeeID}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	entries, err := h.punchService.ListEntries(r.Context(), filter)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
