package http

import (
	"log/slog"
	"os"

	"github.com/clockwork-labs/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeEntryHandler TimeEntryHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires an authenticated session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/dashboard", dashboardHandler.Get)
			r.Get("/reports", reportHandler.Generate)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Patch("/", employeeHandler.Update)
					r.Patch("/deactivate", employeeHandler.Deactivate)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Get("/", timeEntryHandler.List)
				r.Post("/", timeEntryHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", timeEntryHandler.Get)
					r.Patch("/", timeEntryHandler.Update)
					r.Delete("/", timeEntryHandler.Delete)
					r.Post("/checkout", timeEntryHandler.Checkout)
				})
			})
		})
	})

	return r
}
