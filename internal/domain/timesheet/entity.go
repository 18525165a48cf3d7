package timesheet

import (
	"time"
)

// SegmentKind classifies a closed interval between two consecutive punches.
type SegmentKind string

const (
	SegmentKindWork  SegmentKind = "work"
	SegmentKindPause SegmentKind = "pause"
)

type Segment struct {
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Kind  SegmentKind `json:"kind"`
}

// DaySummary is derived on demand from the ledger and never persisted.
type DaySummary struct {
	EmployeeID      string    `json:"employee_id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	WorkedMinutes   int       `json:"worked_minutes"`
	PauseMinutes    int       `json:"pause_minutes"`
	OvertimeMinutes int       `json:"overtime_minutes"`
	Segments        []Segment `json:"segments"`
}

type PeriodTotals struct {
	WorkedMinutes   int `json:"worked_minutes"`
	PauseMinutes    int `json:"pause_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`
}

type PeriodSummary struct {
	EmployeeID string       `json:"employee_id"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	Days       []DaySummary `json:"days"`
	Totals     PeriodTotals `json:"totals"`
}
