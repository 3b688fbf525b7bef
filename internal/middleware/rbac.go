package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/response"
)

// RequireAdmin rejects the request with 403 unless the signed-in user is an
// admin. It runs before the handler, so a rejected request has no effect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin() {
			response.Abort(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to loginPath, remembering the
// requested path in next.
func RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			target := loginPath + "?next=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
