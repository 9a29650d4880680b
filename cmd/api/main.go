package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	appHTTP "github.com/stafftrack/attendance-backend-go/internal/handler/http"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/cron"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/sse"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/stafftrack/attendance-backend-go/internal/service/auth"
	calendarService "github.com/stafftrack/attendance-backend-go/internal/service/calendar"
	departmentService "github.com/stafftrack/attendance-backend-go/internal/service/department"
	employeeService "github.com/stafftrack/attendance-backend-go/internal/service/employee"
	ingestService "github.com/stafftrack/attendance-backend-go/internal/service/ingest"
	reportService "github.com/stafftrack/attendance-backend-go/internal/service/report"
	scheduleService "github.com/stafftrack/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(context.Background(), dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	calendarEntryRepo := postgresql.NewCalendarEntryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	resolver := scheduleService.NewResolver(employeeRepo, workScheduleRepo)
	calendarSvc := calendarService.NewCalendarService(calendarEntryRepo, resolver)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		resolver,
		hub,
		cfg.Recalc.WindowDays,
	)
	scheduleSvc := scheduleService.NewWorkScheduleService(db, workScheduleRepo, attendanceSvc)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		departmentRepo,
		attendanceRepo,
		resolver,
		calendarSvc,
	)
	ingestSvc := ingestService.NewIngestService(attendanceRepo, employeeRepo, resolver, hub)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	deviceHandler := appHTTP.NewDeviceHandler(ingestSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, JWTService)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, employeeRepo, cfg.Recalc.WindowDays)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
		reportHandler,
		scheduleHandler,
		calendarHandler,
		deviceHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
