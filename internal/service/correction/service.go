package correction

import (
	"context"
	"fmt"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/correction"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type CorrectionServiceImpl struct {
	cfg config.AttendanceConfig
	tx  database.TxRunner
	correction.Repository
	ledger    ledger.Repository
	employees employee.Repository
}

func NewCorrectionService(cfg config.AttendanceConfig, tx database.TxRunner, correctionRepo correction.Repository, ledgerRepo ledger.Repository, employeeRepo employee.Repository) correction.Service {
	return &CorrectionServiceImpl{
		cfg:        cfg,
		tx:         tx,
		Repository: correctionRepo,
		ledger:     ledgerRepo,
		employees:  employeeRepo,
	}
}

// CreateRequest implements correction.Service.
func (s *CorrectionServiceImpl) CreateRequest(ctx context.Context, req correction.CreateRequestRequest) (correction.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.RequestResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return correction.RequestResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.cfg.Location)
	if err != nil {
		return correction.RequestResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	request := correction.Request{
		ID:               uuid.New().String(),
		EmployeeID:       req.EmployeeID,
		RequestingUserID: req.RequestingUserID,
		Type:             correction.RequestType(req.Type),
		Date:             date,
		Reason:           req.Reason,
		Description:      req.Description,
		Status:           correction.StatusPending,
	}

	if request.Type == correction.RequestTypeTimeRecord {
		requestedTime, err := time.Parse(time.RFC3339, *req.RequestedTime)
		if err != nil {
			return correction.RequestResponse{}, fmt.Errorf("failed to parse requested_time: %w", err)
		}
		request.RequestedTime = &requestedTime
	}

	created, err := s.Repository.Create(ctx, request)
	if err != nil {
		return correction.RequestResponse{}, err
	}

	return requestToResponse(created), nil
}

// Approve implements correction.Service. The status transition and the
// synthesized ledger entry commit in one transaction: either both land or
// neither does. The compare-and-set inside Decide keeps concurrent duplicate
// approvals from both winning.
func (s *CorrectionServiceImpl) Approve(ctx context.Context, req correction.ApproveRequestRequest) (correction.RequestResponse, error) {
	var decided correction.Request

	err := s.tx(ctx, func(txCtx context.Context) error {
		request, err := s.Repository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if request.Status != correction.StatusPending {
			return correction.ErrAlreadyProcessed
		}

		applied := request.Type == correction.RequestTypeTimeRecord

		decided, err = s.Repository.Decide(txCtx, correction.DecideParams{
			RequestID:         req.ID,
			Status:            correction.StatusApproved,
			AdminNotes:        req.Notes,
			ProcessedBy:       req.AdminActorID,
			ProcessedAt:       time.Now(),
			CorrectionApplied: applied,
		})
		if err != nil {
			return err
		}

		if !applied {
			// Absence requests are record-only; the ledger is untouched.
			return nil
		}

		if decided.RequestedTime == nil {
			return correction.ErrRequestedTimeRequired
		}

		adminActorID := req.AdminActorID
		requestID := decided.ID
		entry := ledger.Entry{
			ID:              uuid.New().String(),
			EmployeeID:      decided.EmployeeID,
			Kind:            classifyRequestedTime(*decided.RequestedTime, s.cfg.Location),
			Timestamp:       *decided.RequestedTime,
			IsCorrection:    true,
			OriginRequestID: &requestID,
			CreatedBy:       &adminActorID,
		}

		if _, err := s.ledger.Insert(txCtx, entry); err != nil {
			return fmt.Errorf("failed to insert correction entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return correction.RequestResponse{}, err
	}

	return requestToResponse(decided), nil
}

// classifyRequestedTime guesses the punch kind from the hour of day: noon or
// later reads as an exit, earlier as an entry. The guess never consults the
// employee's actual punch history for that day, so it can misread unusual
// schedules; that is the documented behavior.
func classifyRequestedTime(t time.Time, loc *time.Location) ledger.EntryKind {
	if t.In(loc).Hour() >= 12 {
		return ledger.EntryKindExit
	}
	return ledger.EntryKindEntry
}

// Reject implements correction.Service.
func (s *CorrectionServiceImpl) Reject(ctx context.Context, req correction.RejectRequestRequest) (correction.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return correction.RequestResponse{}, err
	}

	notes := req.Notes
	decided, err := s.Repository.Decide(ctx, correction.DecideParams{
		RequestID:         req.ID,
		Status:            correction.StatusRejected,
		AdminNotes:        &notes,
		ProcessedBy:       req.AdminActorID,
		ProcessedAt:       time.Now(),
		CorrectionApplied: false,
	})
	if err != nil {
		return correction.RequestResponse{}, err
	}

	return requestToResponse(decided), nil
}

// ListRequests implements correction.Service.
func (s *CorrectionServiceImpl) ListRequests(ctx context.Context, filter correction.RequestFilter) ([]correction.RequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]correction.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, requestToResponse(request))
	}

	return responses, nil
}

func requestToResponse(request correction.Request) correction.RequestResponse {
	resp := correction.RequestResponse{
		ID:                request.ID,
		EmployeeID:        request.EmployeeID,
		EmployeeName:      request.EmployeeName,
		RequestingUserID:  request.RequestingUserID,
		Type:              string(request.Type),
		Date:              request.Date.Format("2006-01-02"),
		Reason:            request.Reason,
		Description:       request.Description,
		Status:            string(request.Status),
		AdminNotes:        request.AdminNotes,
		ProcessedBy:       request.ProcessedBy,
		CorrectionApplied: request.CorrectionApplied,
		CreatedAt:         request.CreatedAt.Format(time.RFC3339),
	}

	if request.RequestedTime != nil {
		t := request.RequestedTime.Format(time.RFC3339)
		resp.RequestedTime = &t
	}
	if request.ProcessedAt != nil {
		t := request.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &t
	}

	return resp
}
