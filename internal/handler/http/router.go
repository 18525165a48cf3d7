package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/chronotrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth        AuthHandler
	Punch       PunchHandler
	Correction  CorrectionHandler
	Timesheet   TimesheetHandler
	Payroll     PayrollHandler
	Employee    EmployeeHandler
	PauseReason PauseReasonHandler
}

func NewRouter(env string, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "chronotrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", h.Punch.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeRequired)
					r.Post("/", h.Punch.Submit)
				})
			})

			r.Route("/corrections", func(r chi.Router) {
				r.Get("/", h.Correction.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeRequired)
					r.Post("/", h.Correction.Create)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Correction.Approve)
					r.Post("/{id}/reject", h.Correction.Reject)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/day/{date}", h.Timesheet.GetDay)
				r.Get("/period", h.Timesheet.GetPeriod)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/employees/{employeeID}/day/{date}", h.Timesheet.GetDay)
					r.Get("/employees/{employeeID}/period", h.Timesheet.GetPeriod)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/{year}/{month}", h.Payroll.Compute)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/employees/{employeeID}/{year}/{month}", h.Payroll.Compute)
				})
			})

			r.Route("/pause-reasons", func(r chi.Router) {
				r.Get("/", h.PauseReason.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.PauseReason.Create)
					r.Put("/{id}", h.PauseReason.Update)
					r.Delete("/{id}", h.PauseReason.Delete)
				})
			})

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Deactivate)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
