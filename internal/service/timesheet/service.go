package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	cfg    config.AttendanceConfig
	ledger ledger.Repository
}

func NewTimesheetService(cfg config.AttendanceConfig, ledgerRepo ledger.Repository) timesheet.Service {
	return &TimesheetServiceImpl{
		cfg:    cfg,
		ledger: ledgerRepo,
	}
}

// GetDaySummary implements timesheet.Service.
func (s *TimesheetServiceImpl) GetDaySummary(ctx context.Context, employeeID, date string) (timesheet.DaySummary, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.cfg.Location)
	if err != nil {
		return timesheet.DaySummary{}, timesheet.ErrInvalidDate
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)

	entries, err := s.ledger.RangeQuery(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return timesheet.DaySummary{}, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	return s.aggregateDay(employeeID, date, entries), nil
}

// GetPeriodSummary implements timesheet.Service. One range query covers the
// whole period so the reader sees a single consistent snapshot even while the
// ledger is being appended to.
func (s *TimesheetServiceImpl) GetPeriodSummary(ctx context.Context, employeeID, startDate, endDate string) (timesheet.PeriodSummary, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, s.cfg.Location)
	if err != nil {
		return timesheet.PeriodSummary{}, timesheet.ErrInvalidDate
	}

	end, err := time.ParseInLocation("2006-01-02", endDate, s.cfg.Location)
	if err != nil {
		return timesheet.PeriodSummary{}, timesheet.ErrInvalidDate
	}

	if start.After(end) {
		return timesheet.PeriodSummary{}, timesheet.ErrInvalidRange
	}

	rangeEnd := end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	entries, err := s.ledger.RangeQuery(ctx, employeeID, start, rangeEnd)
	if err != nil {
		return timesheet.PeriodSummary{}, fmt.Errorf("failed to query ledger entries: %w", err)
	}

	byDay := make(map[string][]ledger.Entry)
	for _, entry := range entries {
		key := entry.Timestamp.In(s.cfg.Location).Format("2006-01-02")
		byDay[key] = append(byDay[key], entry)
	}

	summary := timesheet.PeriodSummary{
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		daySummary := s.aggregateDay(employeeID, key, byDay[key])
		summary.Days = append(summary.Days, daySummary)
		summary.Totals.WorkedMinutes += daySummary.WorkedMinutes
		summary.Totals.PauseMinutes += daySummary.PauseMinutes
		summary.Totals.OvertimeMinutes += daySummary.OvertimeMinutes
	}

	return summary, nil
}

// aggregateDay walks consecutive pairs of one day's entries, timestamp order.
// Entry to pause or exit counts as worked time, pause to entry counts as
// pause time, anything else contributes nothing. A dangling last entry is
// worth zero minutes; open intervals are never extrapolated.
func (s *TimesheetServiceImpl) aggregateDay(employeeID, date string, entries []ledger.Entry) timesheet.DaySummary {
	summary := timesheet.DaySummary{
		EmployeeID: employeeID,
		Date:       date,
		Segments:   []timesheet.Segment{},
	}

	for i := 0; i+1 < len(entries); i++ {
		prev, next := entries[i], entries[i+1]

		var kind timesheet.SegmentKind
		switch {
		case prev.Kind == ledger.EntryKindEntry && (next.Kind == ledger.EntryKindPause || next.Kind == ledger.EntryKindExit):
			kind = timesheet.SegmentKindWork
		case prev.Kind == ledger.EntryKindPause && next.Kind == ledger.EntryKindEntry:
			kind = timesheet.SegmentKindPause
		default:
			continue
		}

		minutes := wholeMinutes(prev.Timestamp, next.Timestamp)
		if kind == timesheet.SegmentKindWork {
			summary.WorkedMinutes += minutes
		} else {
			summary.PauseMinutes += minutes
		}

		summary.Segments = append(summary.Segments, timesheet.Segment{
			Start: prev.Timestamp,
			End:   next.Timestamp,
			Kind:  kind,
		})
	}

	if over := summary.WorkedMinutes - s.cfg.DailyBaselineMinutes; over > 0 {
		summary.OvertimeMinutes = over
	}

	return summary
}

// wholeMinutes truncates the whole-second difference to integer minutes.
// Equal or out-of-order timestamps yield zero, never a negative interval.
func wholeMinutes(start, end time.Time) int {
	seconds := int(end.Sub(start) / time.Second)
	if seconds <= 0 {
		return 0
	}
	return seconds / 60
}
