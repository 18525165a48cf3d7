package response

import (
	"errors"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/auth"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/correction"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/payroll"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/timesheet"
	"github.com/chronotrack/timeclock-backend-go/internal/domain/user"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Business-rule violations
// surface their sentinel message verbatim; only unexpected errors are hidden
// behind a generic 500.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUnlinkedEmployee):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())

	// Ledger domain errors
	case errors.Is(err, ledger.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, ledger.ErrDayClosed):
		Conflict(w, err.Error())
	case errors.Is(err, ledger.ErrMissingJustification):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, ledger.ErrUnknownPauseReason):
		BadRequest(w, err.Error(), nil)

	// Correction domain errors
	case errors.Is(err, correction.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, correction.ErrAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, correction.ErrInvalidRequestType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, correction.ErrRequestedTimeRequired):
		BadRequest(w, err.Error(), nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNoBaseSalary):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())

	// Pause reason domain errors
	case errors.Is(err, pausereason.ErrPauseReasonNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, pausereason.ErrPauseReasonNameExists):
		Conflict(w, err.Error())

	// Store errors are the only retryable kind
	case errors.Is(err, ledger.ErrStoreUnavailable):
		ServiceUnavailable(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
