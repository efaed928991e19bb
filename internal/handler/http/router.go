package http

import (
	"log/slog"
	"os"

	"github.com/bengkelworks/shop-backend-go/internal/handler/http/middleware"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	payrollHandler PayrollHandler,
	boardHandler BoardHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shop-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// The display board consumes its own short-lived token
		r.Get("/board/stream", boardHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/board-token", authHandler.BoardToken)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/events", timesheetHandler.RecordEvent)
				r.Get("/summaries/my", timesheetHandler.MyPeriodSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/events", timesheetHandler.ListEvents)
					r.Get("/summaries", timesheetHandler.PeriodSummaries)

					r.Route("/adjustments", func(r chi.Router) {
						r.Post("/", timesheetHandler.CreateAdjustment)
						r.Delete("/{id}", timesheetHandler.DeleteAdjustment)
					})
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", timesheetHandler.ListHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", timesheetHandler.CreateHoliday)
					r.Delete("/{id}", timesheetHandler.DeleteHoliday)
				})
			})

			r.Route("/policy", func(r chi.Router) {
				r.Get("/", timesheetHandler.GetPolicy)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", timesheetHandler.UpdatePolicy)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", timesheetHandler.CreateLeave)
				r.Get("/my", timesheetHandler.MyLeaves)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", timesheetHandler.ListLeaves)
					r.Post("/{id}/approve", timesheetHandler.ApproveLeave)
					r.Post("/{id}/reject", timesheetHandler.RejectLeave)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Get("/{id}/paid-working-days", payrollHandler.PaidWorkingDays)
				})
			})
		})
	})

	return r
}
