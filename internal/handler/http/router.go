package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stafftrack/attendance-backend-go/internal/config"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	scheduleHandler ScheduleHandler,
	calendarHandler CalendarHandler,
	deviceHandler DeviceHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Api-Key"},
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

		// Device punch ingestion, API-key authenticated
		r.Group(func(r chi.Router) {
			r.Use(middleware.DeviceKey(cfg.Device.APIKeyHash))
			r.Post("/devices/punches", deviceHandler.IngestPunches)
		})

		// SSE stream authenticates by query-parameter token
		r.Get("/events/stream", eventsHandler.Stream)

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", employeeHandler.Create)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})

			// Admin only
			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", departmentHandler.Create)
				r.Get("/", departmentHandler.List)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{id}", attendanceHandler.Get)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/my", reportHandler.MyReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/employees/{id}", reportHandler.EmployeeReport)
					r.Get("/departments/{id}", reportHandler.DepartmentReport)
					r.Get("/company", reportHandler.CompanyReport)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/", calendarHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", calendarHandler.Create)
					r.Delete("/{id}", calendarHandler.Delete)
				})
			})

			r.Get("/events/token", eventsHandler.GetSSEToken)
		})
	})
	return r
}
