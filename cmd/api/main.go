package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/colegio-nocedal/panol-api/api/swagger"
	"github.com/colegio-nocedal/panol-api/internal/handler"
	"github.com/colegio-nocedal/panol-api/internal/repository"
	"github.com/colegio-nocedal/panol-api/internal/router"
	"github.com/colegio-nocedal/panol-api/internal/service"
	"github.com/colegio-nocedal/panol-api/pkg/cache"
	"github.com/colegio-nocedal/panol-api/pkg/config"
	"github.com/colegio-nocedal/panol-api/pkg/database"
	"github.com/colegio-nocedal/panol-api/pkg/logger"
)

// @title Pañol API
// @version 1.0.0
// @description Gestión de pañol escolar: cajas de herramientas, inventario y préstamos anuales
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close() //nolint:errcheck

	// Redis only backs the dashboard cache; the API stays up without it.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient)
	defer cacheRepo.Close() //nolint:errcheck

	cacheEnabled := cfg.Dashboard.CacheEnabled && redisClient != nil
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cacheEnabled)

	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	toolboxRepo := repository.NewToolboxRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authSvc := service.NewAuthService(teacherRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	workshopSvc := service.NewWorkshopService(workshopRepo, courseRepo, validate, logr)
	groupSvc := service.NewGroupService(groupRepo, validate, logr)
	toolboxSvc := service.NewToolboxService(toolboxRepo, validate, logr)
	inventorySvc := service.NewInventoryService(inventoryRepo, validate, logr)
	loanSvc := service.NewLoanService(loanRepo, toolboxRepo, cacheSvc, metrics, validate, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, workshopRepo, cacheSvc, logr)
	reportSvc := service.NewReportService(reportRepo, logr)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Health:    handler.NewHealthHandler(db),
		Student:   handler.NewStudentHandler(studentSvc),
		Workshop:  handler.NewWorkshopHandler(workshopSvc),
		Group:     handler.NewGroupHandler(groupSvc),
		Toolbox:   handler.NewToolboxHandler(toolboxSvc),
		Inventory: handler.NewInventoryHandler(inventorySvc),
		Loan:      handler.NewLoanHandler(loanSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Report:    handler.NewReportHandler(reportSvc),
	}

	engine := router.New(cfg, logr, authSvc, metrics, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}

	logr.Info("server stopped", zap.Int("port", cfg.Port))
}
