package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/sharearahammed/mega-earning-server/docs" // swagger docs

	"github.com/sharearahammed/mega-earning-server/internal/auth"
	"github.com/sharearahammed/mega-earning-server/internal/cache"
	"github.com/sharearahammed/mega-earning-server/internal/config"
	"github.com/sharearahammed/mega-earning-server/internal/db"
	"github.com/sharearahammed/mega-earning-server/internal/handler"
	"github.com/sharearahammed/mega-earning-server/internal/model"
	"github.com/sharearahammed/mega-earning-server/internal/payments"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
	"github.com/sharearahammed/mega-earning-server/internal/router"
	"github.com/sharearahammed/mega-earning-server/internal/service"
)

// @title Mega Earning API
// @version 1.0
// @description Microtask marketplace API: workers earn coins for approved task submissions, creators fund tasks from their coin balance.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Submission{},
		&model.Withdrawal{},
		&model.Payment{},
		&model.Feedback{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	submissionRepo := repository.NewSubmissionRepository(gormDB)
	withdrawalRepo := repository.NewWithdrawalRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	ledgerRepo := repository.NewLedgerRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)

	// External payment processor
	intentClient := payments.NewStripeClient(cfg.StripeSecretKey)

	// Services
	authService := service.NewAuthService(jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, ledgerRepo, cacheClient)
	submissionService := service.NewSubmissionService(submissionRepo, taskRepo, ledgerRepo, cacheClient)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, ledgerRepo, cacheClient)
	paymentService := service.NewPaymentService(paymentRepo, ledgerRepo, intentClient, cacheClient)
	reportService := service.NewReportService(userRepo, submissionRepo, cacheClient)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reportHandler := handler.NewReportHandler(reportService, feedbackService)

	router.Register(
		e,
		cfg,
		userService,
		tokenStore,
		authHandler,
		userHandler,
		taskHandler,
		submissionHandler,
		withdrawalHandler,
		paymentHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
