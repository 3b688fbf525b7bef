package handler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/middleware"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

type authService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, error)
}

type sessionService interface {
	Issue(user *models.User) (string, *models.SessionClaims, error)
	Revoke(ctx context.Context, claims *models.SessionClaims) error
	TTL() time.Duration
}

type loginRecorder interface {
	RecordLogin(success bool)
}

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	auth     authService
	sessions sessionService
	cookie   middleware.SessionCookie
	metrics  loginRecorder
	logger   *zap.Logger
}

// NewAuthHandler constructs an AuthHandler. metrics may be nil.
func NewAuthHandler(auth authService, sessions sessionService, cookie middleware.SessionCookie, metrics loginRecorder, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie, metrics: metrics, logger: logger}
}

// SignUpPage godoc
// @Summary Registration form
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 303 "Already signed in"
// @Router /sign-up [get]
func (h *AuthHandler) SignUpPage(c *gin.Context) {
	if currentUser(c) != nil {
		response.Redirect(c, "/", flash.Info, "")
		return
	}
	response.Page(c, gin.H{"form": []string{"name", "email", "password", "confirm"}})
}

// SignUp godoc
// @Summary Register a student account
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 6)"
// @Param confirm formData string true "Password confirmation"
// @Success 303 "Redirect to /login on success, /sign-up on failure"
// @Router /sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	if currentUser(c) != nil {
		response.Redirect(c, "/", flash.Info, "")
		return
	}
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Redirect(c, "/sign-up", flash.Error, "invalid registration form")
		return
	}
	if _, err := h.auth.Register(c.Request.Context(), req); err != nil {
		redirectOnError(c, "/sign-up", err)
		return
	}
	response.Redirect(c, "/login", flash.Success, "Registration successful! Please log in.")
}

// LoginPage godoc
// @Summary Login form
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if currentUser(c) != nil {
		response.Redirect(c, "/", flash.Info, "You are already signed in!")
		return
	}
	response.Page(c, gin.H{"form": []string{"email", "password"}, "next": c.Query("next")})
}

// Login godoc
// @Summary Sign in
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param next query string false "Local path to continue to"
// @Success 303 "Redirect to next or / on success, /login on failure"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if currentUser(c) != nil {
		response.Redirect(c, "/", flash.Info, "You are already signed in!")
		return
	}
	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	retry := "/login"
	if safeNext(next) {
		retry += "?next=" + url.QueryEscape(next)
	}

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Redirect(c, retry, flash.Error, appErrors.ErrInvalidCredentials.Message)
		return
	}
	user, err := h.auth.Login(c.Request.Context(), req)
	h.recordLogin(err == nil)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrInternal.Code {
			h.logger.Error("login failed", zap.Error(err))
		}
		response.Redirect(c, retry, flash.Error, appErr.Message)
		return
	}

	token, _, err := h.sessions.Issue(user)
	if err != nil {
		h.logger.Error("failed to issue session", zap.Int64("user_id", user.ID), zap.Error(err))
		response.Redirect(c, retry, flash.Error, appErrors.FromError(err).Message)
		return
	}
	middleware.SetSessionCookie(c, h.cookie, token, h.sessions.TTL())

	target := "/"
	if safeNext(next) {
		target = next
	}
	response.Redirect(c, target, flash.Success, fmt.Sprintf("Welcome, %s!", user.Name))
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Success 303 "Redirect to /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Revoke(c.Request.Context(), middleware.CurrentSession(c)); err != nil {
		h.logger.Warn("failed to revoke session", zap.Error(err))
	}
	middleware.ClearSessionCookie(c, h.cookie)
	response.Redirect(c, "/login", flash.Info, "")
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLogin(success)
	}
}
