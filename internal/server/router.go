package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/handler"
	"github.com/noah-isme/kland-web/internal/middleware"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/pkg/config"
	"github.com/noah-isme/kland-web/pkg/csrf"
	"github.com/noah-isme/kland-web/pkg/logger"
	reqidmiddleware "github.com/noah-isme/kland-web/pkg/middleware/requestid"
)

const loginPath = "/login"

// SessionParser verifies a raw session cookie.
type SessionParser interface {
	Parse(ctx context.Context, raw string) (*models.SessionClaims, error)
}

// UserLoader resolves the user a session belongs to.
type UserLoader interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// RateLimiter counts hits in a fixed window.
type RateLimiter interface {
	Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RequestObserver records request latency and outcome.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Handlers groups every workflow controller the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Pages        *handler.PageHandler
	News         *handler.NewsHandler
	Admission    *handler.AdmissionHandler
	Teachers     *handler.TeacherHandler
	Applications *handler.ApplicationHandler
	Messages     *handler.MessageHandler
	Dashboard    *handler.DashboardHandler
	Ops          *handler.MetricsHandler
}

// Options carries the cross-cutting collaborators of the router.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions SessionParser
	Users    UserLoader
	Limiter  RateLimiter
	Metrics  RequestObserver
}

// NewRouter builds the gin engine with every route of the site.
func NewRouter(opts Options, h Handlers) (*gin.Engine, error) {
	cfg := opts.Config
	logr := opts.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}
	guard := csrf.New(cfg.Session.Secret, cfg.Session.Secure)
	maxBody := cfg.Upload.MaxBytes

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(middleware.Session(opts.Sessions, opts.Users, cookie, logr))

	r.GET("/health", h.Ops.Health)
	r.GET("/ready", h.Ops.Ready)
	r.GET("/metrics", h.Ops.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.StaticRoot != "" {
		r.Static("/static", cfg.StaticRoot)
	}

	site := r.Group("", middleware.BodyLimit(maxBody), middleware.CSRF(guard))
	site.GET("/", h.Pages.Home)
	site.GET("/about", h.Pages.About)
	site.GET("/courses", h.Pages.Courses)
	site.GET("/corey", h.Pages.Corey)
	site.GET("/admission-korea", h.Pages.AdmissionKorea)
	site.GET("/news", h.News.List)
	site.GET("/news/:id", h.News.Detail)
	site.POST("/apply-course", h.Applications.Apply)
	site.GET("/contackt", h.Messages.ContactPage)
	site.POST("/contackt", h.Messages.Contact)

	limit, window := cfg.RateLimit.Limit, cfg.RateLimit.Window
	site.GET("/sign-up", h.Auth.SignUpPage)
	site.POST("/sign-up", middleware.RateLimit(opts.Limiter, "sign-up", limit, window, logr), h.Auth.SignUp)
	site.GET(loginPath, h.Auth.LoginPage)
	site.POST(loginPath, middleware.RateLimit(opts.Limiter, "login", limit, window, logr), h.Auth.Login)
	site.GET("/logout", middleware.RequireLogin(loginPath), middleware.RequireCSRF(guard), h.Auth.Logout)

	// The admin check runs first so anonymous callers never learn about limits.
	admin := r.Group("", middleware.RequireAdmin(), middleware.BodyLimit(maxBody), middleware.CSRF(guard))
	admin.GET("/admin", h.Dashboard.Admin)
	admin.GET("/admin/news", h.News.AdminIndex)
	admin.GET("/admin/news/add", h.News.AdminIndex)
	admin.POST("/admin/news/add", h.News.Create)
	admin.GET("/admin/news/edit/:id", h.News.AdminIndex)
	admin.POST("/admin/news/edit/:id", h.News.Update)
	admin.GET("/admin/news/delete/:id", middleware.RequireCSRF(guard), h.News.Delete)

	admin.GET("/admin/admission-periods", h.Admission.Page)
	admin.POST("/admin/admission-periods/add", h.Admission.Create)
	admin.POST("/admin/admission-periods/edit/:id", h.Admission.Update)
	admin.POST("/admin/admission-periods/delete/:id", h.Admission.Delete)
	admin.GET("/debug-periods", h.Admission.Debug)

	admin.GET("/admin/teachers", h.Teachers.Page)
	admin.POST("/admin/teachers", h.Teachers.Submit)
	admin.GET("/admin/teachers/delete/:id", middleware.RequireCSRF(guard), h.Teachers.Delete)

	admin.POST("/update-status", h.Applications.UpdateStatus)
	admin.GET("/admin/applications/export", h.Applications.Export)
	admin.POST("/delete_message/:id", h.Messages.Delete)

	return r, nil
}
