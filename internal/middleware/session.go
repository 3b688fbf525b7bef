package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

const (
	// ContextUserKey is the gin context key storing the signed-in user.
	ContextUserKey = "currentUser"
	// ContextSessionKey is the gin context key storing the verified session claims.
	ContextSessionKey = "currentSession"
)

type sessionParser interface {
	Parse(ctx context.Context, raw string) (*models.SessionClaims, error)
}

type sessionUserLoader interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// SessionCookie describes the session cookie attributes.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Session resolves the signed-in user from the session cookie. Requests
// without a valid session continue anonymously and a bad cookie is cleared.
func Session(sessions sessionParser, users sessionUserLoader, cookie SessionCookie, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookie.Name)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(c.Request.Context(), raw)
		if err != nil {
			dropSession(c, cookie, logger, err)
			c.Next()
			return
		}

		user, err := users.UserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			dropSession(c, cookie, logger, err)
			c.Next()
			return
		}

		c.Set(ContextSessionKey, claims)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// dropSession clears the cookie only when the session itself was rejected.
// Store outages leave the cookie in place so the user is signed in again
// once the store recovers.
func dropSession(c *gin.Context, cookie SessionCookie, logger *zap.Logger, err error) {
	if appErrors.Is(err, appErrors.ErrUnauthorized) {
		logger.Debug("discarding session cookie", zap.Error(err))
		ClearSessionCookie(c, cookie)
		return
	}
	logger.Warn("session check failed, continuing anonymously", zap.Error(err))
}

// CurrentUser returns the signed-in user or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// CurrentSession returns the verified session claims or nil.
func CurrentSession(c *gin.Context) *models.SessionClaims {
	value, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*models.SessionClaims)
	return claims
}

// SetSessionCookie writes the signed session token.
func SetSessionCookie(c *gin.Context, cookie SessionCookie, token string, ttl time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookie SessionCookie) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
