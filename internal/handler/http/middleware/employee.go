package middleware

import (
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/auth"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// EmployeeRequired rejects actors whose account is not linked to an employee
// record before any attendance operation proceeds.
func EmployeeRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.HandleError(w, auth.ErrUnlinkedEmployee)
			return
		}

		next.ServeHTTP(w, r)
	})
}
