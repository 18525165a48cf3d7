package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/chronotrack/timeclock-backend-go/internal/config"
	appHTTP "github.com/chronotrack/timeclock-backend-go/internal/handler/http"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/database"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/chronotrack/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/chronotrack/timeclock-backend-go/internal/service/auth"
	correctionService "github.com/chronotrack/timeclock-backend-go/internal/service/correction"
	employeeService "github.com/chronotrack/timeclock-backend-go/internal/service/employee"
	pauseReasonService "github.com/chronotrack/timeclock-backend-go/internal/service/pausereason"
	payrollService "github.com/chronotrack/timeclock-backend-go/internal/service/payroll"
	punchService "github.com/chronotrack/timeclock-backend-go/internal/service/punch"
	timesheetService "github.com/chronotrack/timeclock-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := database.Migrate(dsn, cfg.App.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	pauseReasonRepo := postgresql.NewPauseReasonRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	punchSvc := punchService.NewPunchService(cfg.Attendance, ledgerRepo, pauseReasonRepo)
	correctionSvc := correctionService.NewCorrectionService(cfg.Attendance, txRunner, correctionRepo, ledgerRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(cfg.Attendance, ledgerRepo)
	payrollSvc := payrollService.NewPayrollService(cfg.Attendance, employeeRepo, timesheetSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	pauseReasonSvc := pauseReasonService.NewPauseReasonService(pauseReasonRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtSvc, authSvc),
		Punch:       appHTTP.NewPunchHandler(punchSvc),
		Correction:  appHTTP.NewCorrectionHandler(correctionSvc),
		Timesheet:   appHTTP.NewTimesheetHandler(timesheetSvc),
		Payroll:     appHTTP.NewPayrollHandler(payrollSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		PauseReason: appHTTP.NewPauseReasonHandler(pauseReasonSvc),
	}

	router := appHTTP.NewRouter(cfg.App.Env, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
