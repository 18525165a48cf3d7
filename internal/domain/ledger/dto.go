package ledger

import (
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/validator"
)

type SubmitPunchRequest struct {
	EmployeeID    string  `json:"-"`
	Kind          string  `json:"kind"` // entry, pause, exit
	PauseReasonID *string `json:"pause_reason_id,omitempty"`
	CustomReason  *string `json:"custom_reason,omitempty"`
}

func (r *SubmitPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !EntryKind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: entry, pause, exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Kind            string  `json:"kind"`
	Timestamp       string  `json:"timestamp"`
	PauseReasonID   *string `json:"pause_reason_id,omitempty"`
	PauseReasonName *string `json:"pause_reason_name,omitempty"`
	CustomReason    *string `json:"custom_reason,omitempty"`
	IsCorrection    bool    `json:"is_correction"`
	OriginRequestID *string `json:"origin_request_id,omitempty"`
}

type EntriesFilter struct {
	EmployeeID string  `json:"-"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *EntriesFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
