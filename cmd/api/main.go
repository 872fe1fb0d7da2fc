package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/config"
	appHTTP "github.com/shiftwatch/attendance-backend-go/internal/handler/http"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/clock"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/email"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/sse"
	"github.com/shiftwatch/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwatch/attendance-backend-go/internal/service/attendance"
	authService "github.com/shiftwatch/attendance-backend-go/internal/service/auth"
	employeeService "github.com/shiftwatch/attendance-backend-go/internal/service/employee"
	leaveService "github.com/shiftwatch/attendance-backend-go/internal/service/leave"
	notificationService "github.com/shiftwatch/attendance-backend-go/internal/service/notification"
	reportService "github.com/shiftwatch/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()
	sender := email.NewSender(cfg.SMTP)
	publisher := notificationService.NewDispatcher(userRepo, hub, sender, notificationService.Config{
		QueueSize:   cfg.Notification.QueueSize,
		WorkerCount: cfg.Notification.WorkerCount,
	})
	defer publisher.Stop()

	authSvc := authService.NewAuthService(txManager, userRepo, jwtService, refreshTokenRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, userRepo, publisher, clock.System(), loc)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, userRepo, publisher)
	employeeSvc := employeeService.NewEmployeeService(txManager, userRepo, publisher)
	reportSvc := reportService.NewReportService(reportRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	notificationHandler := appHTTP.NewNotificationHandler(publisher, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		reportHandler,
		notificationHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
