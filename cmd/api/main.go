package main

import (
	"fmt"
	"net/http"

	"github.com/clockwork-labs/timetrack-backend-go/internal/config"
	appHTTP "github.com/clockwork-labs/timetrack-backend-go/internal/handler/http"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/database"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/jwt"
	"github.com/clockwork-labs/timetrack-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/clockwork-labs/timetrack-backend-go/internal/service/auth"
	dashboardService "github.com/clockwork-labs/timetrack-backend-go/internal/service/dashboard"
	employeeService "github.com/clockwork-labs/timetrack-backend-go/internal/service/employee"
	reportService "github.com/clockwork-labs/timetrack-backend-go/internal/service/report"
	timeEntryService "github.com/clockwork-labs/timetrack-backend-go/internal/service/timeentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authService := serviceAuth.NewAuthService(db, userRepo, sessionRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, employeeRepo)
	reportSvc := reportService.NewReportService(timeEntryRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, timeEntryRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		timeEntryHandler,
		dashboardHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
