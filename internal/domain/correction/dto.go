package correction

import (
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeID       string  `json:"-"`
	RequestingUserID string  `json:"-"`
	Type             string  `json:"type"` // absence, time_record
	Date             string  `json:"date"` // YYYY-MM-DD
	Reason           string  `json:"reason"`
	Description      *string `json:"description,omitempty"`
	RequestedTime    *string `json:"requested_time,omitempty"` // RFC3339, required for time_record
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !RequestType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: absence, time_record",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if RequestType(r.Type) == RequestTypeTimeRecord {
		if r.RequestedTime == nil || validator.IsEmpty(*r.RequestedTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_time",
				Message: "requested_time is required for time_record requests",
			})
		} else if _, valid := validator.IsValidDateTime(*r.RequestedTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_time",
				Message: "requested_time must be a valid ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveRequestRequest carries an admin approval. Notes are optional.
type ApproveRequestRequest struct {
	ID           string  `json:"-"`
	AdminActorID string  `json:"-"`
	Notes        *string `json:"notes,omitempty"`
}

// RejectRequestRequest carries an admin rejection. Notes are required.
type RejectRequestRequest struct {
	ID           string `json:"-"`
	AdminActorID string `json:"-"`
	Notes        string `json:"notes"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "rejection notes are required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	RequestingUserID  string  `json:"requesting_user_id"`
	Type              string  `json:"type"`
	Date              string  `json:"date"`
	Reason            string  `json:"reason"`
	Description       *string `json:"description,omitempty"`
	RequestedTime     *string `json:"requested_time,omitempty"`
	Status            string  `json:"status"`
	AdminNotes        *string `json:"admin_notes,omitempty"`
	ProcessedBy       *string `json:"processed_by,omitempty"`
	ProcessedAt       *string `json:"processed_at,omitempty"`
	CorrectionApplied bool    `json:"correction_applied"`
	CreatedAt         string  `json:"created_at"`
}

type RequestFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		validStatuses := []string{"pending", "approved", "rejected"}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
