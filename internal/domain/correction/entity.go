package correction

import (
	"time"
)

// RequestType enum
type RequestType string

const (
	RequestTypeAbsence    RequestType = "absence"
	RequestTypeTimeRecord RequestType = "time_record"
)

func (t RequestType) Valid() bool {
	return t == RequestTypeAbsence || t == RequestTypeTimeRecord
}

// Status enum. A request leaves pending at most once.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee-filed correction request. Absence requests are
// record-only; approved time_record requests produce exactly one retroactive
// ledger entry, tracked by CorrectionApplied.
type Request struct {
	ID                string
	EmployeeID        string
	RequestingUserID  string
	Type              RequestType
	Date              time.Time
	Reason            string
	Description       *string
	RequestedTime     *time.Time
	Status            Status
	AdminNotes        *string
	ProcessedBy       *string
	ProcessedAt       *time.Time
	CorrectionApplied bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}
