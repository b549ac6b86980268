package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/infinithree/absensi-backend-go/internal/config"
	appHTTP "github.com/infinithree/absensi-backend-go/internal/handler/http"
	"github.com/infinithree/absensi-backend-go/internal/pkg/cron"
	"github.com/infinithree/absensi-backend-go/internal/pkg/database"
	"github.com/infinithree/absensi-backend-go/internal/pkg/email"
	"github.com/infinithree/absensi-backend-go/internal/pkg/jwt"
	"github.com/infinithree/absensi-backend-go/internal/pkg/oauth"
	"github.com/infinithree/absensi-backend-go/internal/pkg/storage"
	"github.com/infinithree/absensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/infinithree/absensi-backend-go/internal/service/attendance"
	serviceAuth "github.com/infinithree/absensi-backend-go/internal/service/auth"
	dashboardService "github.com/infinithree/absensi-backend-go/internal/service/dashboard"
	employeeService "github.com/infinithree/absensi-backend-go/internal/service/employee"
	"github.com/infinithree/absensi-backend-go/internal/service/file"
	"github.com/infinithree/absensi-backend-go/internal/service/leave"
	reportService "github.com/infinithree/absensi-backend-go/internal/service/report"
	settingsService "github.com/infinithree/absensi-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		[]string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
	)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, refreshTokenRepo, jwtService, googleService, emailService, cfg)
	userService := employeeService.NewUserService(userRepo, cfg.App.CompanyName)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo, fileService)
	leaveService := leave.NewLeaveRequestService(leaveRequestRepo, userRepo, emailService)
	reportSvc := reportService.NewReportService(userRepo, attendanceRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo, leaveRequestRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authService, googleService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(userService),
		Leave:      appHTTP.NewLeaveHandler(leaveService),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Navigation: appHTTP.NewNavigationHandler(),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(refreshTokenRepo, attendanceRepo, jwtService).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
