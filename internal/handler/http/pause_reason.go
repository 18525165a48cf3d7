package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PauseReasonHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PauseReasonHandlerImpl struct {
	pauseReasonService pausereason.Service
}

func NewPauseReasonHandler(pauseReasonService pausereason.Service) PauseReasonHandler {
	return &PauseReasonHandlerImpl{pauseReasonService: pauseReasonService}
}

// Create implements PauseReasonHandler.
func (h *PauseReasonHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req pausereason.CreatePauseReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create pause reason decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.pauseReasonService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create pause reason service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pause reason created", created)
}

// List implements PauseReasonHandler.
func (h *PauseReasonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reasons, err := h.pauseReasonService.List(r.Context())
	if err != nil {
		slog.Error("List pause reasons service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reasons)
}

// Update implements PauseReasonHandler.
func (h *PauseReasonHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req pausereason.UpdatePauseReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update pause reason decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.pauseReasonService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update pause reason service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements PauseReasonHandler.
func (h *PauseReasonHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.pauseReasonService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pause reason deleted", nil)
}
