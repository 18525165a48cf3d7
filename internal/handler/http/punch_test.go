package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	punchTestSecret     = "test-secret-key-for-jwt"
	punchTestAccessExp  = "1h"
	punchTestRefreshExp = "24h"
)

// fakePunchService returns a canned result or error.
type fakePunchService struct {
	resp ledger.EntryResponse
	err  error

	gotReq ledger.SubmitPunchRequest
}

func (f *fakePunchService) SubmitPunch(ctx context.Context, req ledger.SubmitPunchRequest) (ledger.EntryResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return ledger.EntryResponse{}, f.err
	}
	return f.resp, nil
}

func (f *fakePunchService) ListEntries(ctx context.Context, filter ledger.EntriesFilter) ([]ledger.EntryResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []ledger.EntryResponse{f.resp}, nil
}

func punchTestRouter(jwtSvc jwt.Service, svc ledger.PunchService) *chi.Mux {
	h := NewPunchHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtSvc.JWTAuth()))

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", h.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.EmployeeRequired)
				r.Post("/", h.Submit)
			})
		})
	})
	return r
}

func accessTokenFor(t *testing.T, jwtSvc jwt.Service, employeeID *string) string {
	t.Helper()
	token, _, err := jwtSvc.GenerateAccessToken("user-1", "worker@example.com", employeeID, false)
	require.NoError(t, err)
	return token
}

func TestPunchHandler_Submit_WithoutToken(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	router := punchTestRouter(jwtSvc, &fakePunchService{})

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"kind":"entry"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunchHandler_Submit_UnlinkedAccount(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	router := punchTestRouter(jwtSvc, &fakePunchService{})

	token := accessTokenFor(t, jwtSvc, nil)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"kind":"entry"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPunchHandler_Submit_Success(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	svc := &fakePunchService{
		resp: ledger.EntryResponse{ID: "entry-1", EmployeeID: "emp-1", Kind: "entry"},
	}
	router := punchTestRouter(jwtSvc, svc)

	employeeID := "emp-1"
	token := accessTokenFor(t, jwtSvc, &employeeID)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"kind":"entry"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// the employee id must come from the token, never from the body
	assert.Equal(t, "emp-1", svc.gotReq.EmployeeID)

	var body struct {
		Success bool                 `json:"success"`
		Data    ledger.EntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "entry-1", body.Data.ID)
}

func TestPunchHandler_Submit_BodyCannotSpoofEmployee(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	svc := &fakePunchService{resp: ledger.EntryResponse{ID: "entry-1"}}
	router := punchTestRouter(jwtSvc, svc)

	employeeID := "emp-1"
	token := accessTokenFor(t, jwtSvc, &employeeID)

	req := httptest.NewRequest(http.MethodPost, "/punches",
		bytes.NewBufferString(`{"kind":"entry","employee_id":"emp-other"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "emp-1", svc.gotReq.EmployeeID)
}

func TestPunchHandler_Submit_DayClosedMapsToConflict(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	router := punchTestRouter(jwtSvc, &fakePunchService{err: ledger.ErrDayClosed})

	employeeID := "emp-1"
	token := accessTokenFor(t, jwtSvc, &employeeID)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"kind":"entry"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPunchHandler_Submit_StoreUnavailableMapsTo503(t *testing.T) {
	t.Parallel()
	jwtSvc := jwt.NewJWTService(punchTestSecret, punchTestAccessExp, punchTestRefreshExp)
	router := punchTestRouter(jwtSvc, &fakePunchService{err: ledger.ErrStoreUnavailable})

	employeeID := "emp-1"
	token := accessTokenFor(t, jwtSvc, &employeeID)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewBufferString(`{"kind":"entry"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
