package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/infinithree/absensi-backend-go/internal/config"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/middleware"
	"github.com/infinithree/absensi-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Report     ReportHandler
	Settings   SettingsHandler
	Dashboard  DashboardHandler
	Navigation NavigationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded selfies are served statically.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Put("/auth/password", h.Auth.ChangePassword)

			r.Get("/navigation", h.Navigation.Menu)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Employee.Profile)
				r.Put("/name", h.Employee.UpdateOwnName)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)

				// SuperAdmin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Delete("/{userID}/today", h.Attendance.ResetToday)
				})
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.ListMine)

				// Admin team only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminTeamOnly)
					r.Get("/", h.Leave.ListAll)
					r.Put("/{requestID}/approve", h.Leave.Approve)
					r.Put("/{requestID}/reject", h.Leave.Reject)
				})
			})

			// Admin team only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminTeamOnly)

				r.Get("/dashboard", h.Dashboard.Stats)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Put("/{userID}", h.Employee.Update)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/monthly", h.Report.Monthly)
					r.Get("/daily", h.Report.Daily)
				})

				r.Get("/settings/shifts", h.Settings.GetShiftSettings)
			})

			// SuperAdmin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)

				r.Route("/settings", func(r chi.Router) {
					r.Put("/shifts", h.Settings.UpdateShiftSettings)
					r.Get("/company", h.Settings.GetCompanySettings)
					r.Put("/company/name", h.Settings.UpdateCompanyName)
					r.Post("/company/roles", h.Settings.AddRole)
					r.Delete("/company/roles", h.Settings.RemoveRole)
				})
			})
		})
	})

	return r
}
