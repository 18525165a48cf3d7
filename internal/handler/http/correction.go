package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/correction"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CorrectionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type CorrectionHandlerImpl struct {
	correctionService correction.Service
}

func NewCorrectionHandler(correctionService correction.Service) CorrectionHandler {
	return &CorrectionHandlerImpl{correctionService: correctionService}
}

// Create implements CorrectionHandler.
func (h *CorrectionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := claimUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, err := claimEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req correction.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create correction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.RequestingUserID = userID

	created, err := h.correctionService.CreateRequest(r.Context(), req)
	if err != nil {
		slog.Error("Create correction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request filed", created)
}

// List implements CorrectionHandler. Admins see every employee's requests;
// everyone else only their own.
func (h *CorrectionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter correction.RequestFilter

	if claimIsAdmin(r) {
		if v := r.URL.Query().Get("employee_id"); v != "" {
			filter.EmployeeID = &v
		}
	} else {
		employeeID, err := claimEmployeeID(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		filter.EmployeeID = &employeeID
	}

	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	requests, err := h.correctionService.ListRequests(r.Context(), filter)
	if err != nil {
		slog.Error("List corrections service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements CorrectionHandler.
func (h *CorrectionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := claimUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// notes are optional, so an empty body is fine
	var req correction.ApproveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.AdminActorID = userID

	decided, err := h.correctionService.Approve(r.Context(), req)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request approved", decided)
}

// Reject implements CorrectionHandler.
func (h *CorrectionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID, err := claimUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req correction.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.AdminActorID = userID

	decided, err := h.correctionService.Reject(r.Context(), req)
	if err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request rejected", decided)
}
