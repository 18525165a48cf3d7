package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	cfg    config.AttendanceConfig
	locker *employeeLocker
	ledger.Repository
	pauseReasons pausereason.Repository
}

func NewPunchService(cfg config.AttendanceConfig, ledgerRepo ledger.Repository, pauseReasonRepo pausereason.Repository) ledger.PunchService {
	return &PunchServiceImpl{
		cfg:          cfg,
		locker:       newEmployeeLocker(),
		Repository:   ledgerRepo,
		pauseReasons: pauseReasonRepo,
	}
}

// dayBounds returns the [start, end] of the calendar day t falls into, in the
// configured time zone.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// SubmitPunch implements ledger.PunchService. The read-then-insert sequence is
// serialized per employee; entries from prior days never affect today's state.
func (s *PunchServiceImpl) SubmitPunch(ctx context.Context, req ledger.SubmitPunchRequest) (ledger.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EntryResponse{}, err
	}

	kind := ledger.EntryKind(req.Kind)

	var justification ledger.PauseJustification
	if kind == ledger.EntryKindPause {
		j, err := ledger.NewPauseJustification(req.PauseReasonID, req.CustomReason)
		if err != nil {
			return ledger.EntryResponse{}, err
		}
		justification = j

		if reasonID := justification.ReasonID(); reasonID != nil {
			if _, err := s.pauseReasons.GetByID(ctx, *reasonID); err != nil {
				if errors.Is(err, pausereason.ErrPauseReasonNotFound) {
					return ledger.EntryResponse{}, ledger.ErrUnknownPauseReason
				}
				return ledger.EntryResponse{}, fmt.Errorf("failed to look up pause reason: %w", err)
			}
		}
	}

	mu := s.locker.forEmployee(req.EmployeeID)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().In(s.cfg.Location)
	dayStart, dayEnd := dayBounds(now, s.cfg.Location)

	last, err := s.Repository.FindLastLive(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to read current day state: %w", err)
	}

	if err := validateTransition(last, kind); err != nil {
		return ledger.EntryResponse{}, err
	}

	entry := ledger.Entry{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Kind:       kind,
		Timestamp:  now,
	}
	if kind == ledger.EntryKindPause {
		entry.PauseReasonID = justification.ReasonID()
		entry.CustomReason = justification.Custom()
	}

	inserted, err := s.Repository.Insert(ctx, entry)
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return entryToResponse(inserted), nil
}

// validateTransition applies the punch state machine. The state is derived
// from the last live entry of the day: nil means no entry yet, Entry means
// working, Pause means paused, Exit means the day is closed.
func validateTransition(last *ledger.Entry, kind ledger.EntryKind) error {
	if last == nil {
		if kind != ledger.EntryKindEntry {
			return ledger.ErrInvalidTransition
		}
		return nil
	}

	switch last.Kind {
	case ledger.EntryKindEntry: // working
		if kind == ledger.EntryKindEntry {
			return ledger.ErrInvalidTransition
		}
		return nil
	case ledger.EntryKindPause: // paused
		if kind == ledger.EntryKindPause {
			return ledger.ErrInvalidTransition
		}
		return nil
	case ledger.EntryKindExit: // day closed
		if kind == ledger.EntryKindEntry {
			return ledger.ErrDayClosed
		}
		return ledger.ErrInvalidTransition
	}

	return ledger.ErrInvalidTransition
}

// ListEntries implements ledger.PunchService.
func (s *PunchServiceImpl) ListEntries(ctx context.Context, filter ledger.EntriesFilter) ([]ledger.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	loc := s.cfg.Location

	start := time.Date(1970, time.January, 1, 0, 0, 0, 0, loc)
	if filter.StartDate != nil && *filter.StartDate != "" {
		d, err := time.ParseInLocation("2006-01-02", *filter.StartDate, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}
		start = d
	}

	end := time.Now().In(loc)
	if filter.EndDate != nil && *filter.EndDate != "" {
		d, err := time.ParseInLocation("2006-01-02", *filter.EndDate, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_date: %w", err)
		}
		end = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	entries, err := s.Repository.RangeQuery(ctx, filter.EmployeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	responses := make([]ledger.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entryToResponse(entry))
	}

	return responses, nil
}

func entryToResponse(entry ledger.Entry) ledger.EntryResponse {
	return ledger.EntryResponse{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		Kind:            string(entry.Kind),
		Timestamp:       entry.Timestamp.Format(time.RFC3339),
		PauseReasonID:   entry.PauseReasonID,
		PauseReasonName: entry.PauseReasonName,
		CustomReason:    entry.CustomReason,
		IsCorrection:    entry.IsCorrection,
		OriginRequestID: entry.OriginRequestID,
	}
}
