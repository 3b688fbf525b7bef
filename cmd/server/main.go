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

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/kland-web/api/swagger"
	"github.com/noah-isme/kland-web/internal/handler"
	"github.com/noah-isme/kland-web/internal/middleware"
	"github.com/noah-isme/kland-web/internal/repository"
	"github.com/noah-isme/kland-web/internal/server"
	"github.com/noah-isme/kland-web/internal/service"
	"github.com/noah-isme/kland-web/pkg/cache"
	"github.com/noah-isme/kland-web/pkg/config"
	"github.com/noah-isme/kland-web/pkg/database"
	"github.com/noah-isme/kland-web/pkg/logger"
	"github.com/noah-isme/kland-web/pkg/storage"
)

// @title KLand Web API
// @version 1.0.0
// @description Institutional website: courses, admissions, news, teachers and the admin back-office.
// @BasePath /
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db.DB, logr); err != nil {
			logr.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	photos, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		logr.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	applicationRepo := repository.NewCourseApplicationRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	periodRepo := repository.NewAdmissionPeriodRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)

	authSvc := service.NewAuthService(userRepo, service.NewPasswordHasher(cfg.Auth.BcryptCost), validate, logr)
	sessionSvc := service.NewSessionService(sessionRepo, service.SessionConfig{Secret: cfg.Session.Secret, TTL: cfg.Session.TTL}, logr)
	uploadSvc := service.NewUploadService(photos, service.UploadConfig{
		PublicPrefix:      cfg.Upload.PublicPrefix,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
	}, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, validate, logr, metrics)
	newsSvc := service.NewNewsService(newsRepo, validate, logr)
	periodSvc := service.NewAdmissionPeriodService(periodRepo, validate, logr)
	messageSvc := service.NewMessageService(messageRepo, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, uploadSvc, validate, logr, metrics)
	dashboardSvc := service.NewDashboardService(userRepo, applicationSvc, newsSvc, periodSvc, messageSvc, teacherSvc, logr)
	exportSvc := service.NewExportService(applicationSvc, nil, nil, logr)

	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}
	readiness := map[string]handler.Pinger{
		"postgres": db,
		"redis": handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}),
	}

	router, err := server.NewRouter(server.Options{
		Config:   cfg,
		Logger:   logr,
		Sessions: sessionSvc,
		Users:    authSvc,
		Limiter:  sessionRepo,
		Metrics:  metrics,
	}, server.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, sessionSvc, cookie, metrics, logr),
		Pages:        handler.NewPageHandler(newsSvc, periodSvc, teacherSvc),
		News:         handler.NewNewsHandler(newsSvc),
		Admission:    handler.NewAdmissionHandler(periodSvc, dashboardSvc),
		Teachers:     handler.NewTeacherHandler(teacherSvc, dashboardSvc, logr),
		Applications: handler.NewApplicationHandler(applicationSvc, exportSvc, logr),
		Messages:     handler.NewMessageHandler(messageSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Ops:          handler.NewMetricsHandler(metrics, readiness, logr),
	})
	if err != nil {
		logr.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
