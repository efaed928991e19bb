package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bengkelworks/shop-backend-go/internal/config"
	appHTTP "github.com/bengkelworks/shop-backend-go/internal/handler/http"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/cron"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/jwt"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/sse"
	"github.com/bengkelworks/shop-backend-go/internal/repository/postgresql"
	authService "github.com/bengkelworks/shop-backend-go/internal/service/auth"
	employeeService "github.com/bengkelworks/shop-backend-go/internal/service/employee"
	payrollService "github.com/bengkelworks/shop-backend-go/internal/service/payroll"
	timesheetService "github.com/bengkelworks/shop-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveGrantRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(db, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		eventRepo,
		adjustmentRepo,
		leaveRepo,
		holidayRepo,
		policyRepo,
		employeeRepo,
		hub,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		eventRepo,
		adjustmentRepo,
		leaveRepo,
		holidayRepo,
		policyRepo,
		employeeRepo,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	boardHandler := appHTTP.NewBoardHandler(hub, jwtService)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(eventRepo, employeeRepo, policyRepo, hub, timesheetService.BoardTopic)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		timesheetHandler,
		payrollHandler,
		boardHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
