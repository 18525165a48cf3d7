package http

import (
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// claimUserID extracts the acting user's id from the verified token.
func claimUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

// claimEmployeeID extracts the acting user's linked employee id. Accounts
// without one cannot punch or file corrections.
func claimEmployeeID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrUnlinkedEmployee
	}

	return employeeID, nil
}

func claimIsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}

	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}
