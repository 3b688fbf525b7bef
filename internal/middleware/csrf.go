package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/pkg/csrf"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/response"
)

// multipartMemory matches gin's default MaxMultipartMemory.
const multipartMemory = 32 << 20

type csrfGuard interface {
	Issue(c *gin.Context) string
	Verify(c *gin.Context, submitted string) bool
}

// CSRF issues the anti-forgery token on every request and requires it back
// on state-changing methods.
func CSRF(guard csrfGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		guard.Issue(c)
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		checkCSRF(c, guard)
	}
}

// RequireCSRF demands the token regardless of method. It guards the GET
// links that delete records or end the session.
func RequireCSRF(guard csrfGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkCSRF(c, guard)
	}
}

func checkCSRF(c *gin.Context, guard csrfGuard) {
	submitted, err := submittedToken(c)
	if err != nil {
		if IsBodyTooLarge(err) {
			response.Abort(c, appErrors.ErrPayloadTooLarge)
			return
		}
		response.Abort(c, appErrors.Clone(appErrors.ErrValidation, "malformed form"))
		return
	}
	if !guard.Verify(c, submitted) {
		response.Abort(c, appErrors.ErrCSRF)
		return
	}
	c.Next()
}

// submittedToken reads the header, then the query, then the form body. The
// form is parsed here so an oversized body surfaces as an error instead of a
// missing token.
func submittedToken(c *gin.Context) (string, error) {
	if token := c.GetHeader(csrf.HeaderName); token != "" {
		return token, nil
	}
	if token := c.Query(csrf.FieldName); token != "" {
		return token, nil
	}
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return "", nil
	}
	var err error
	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		err = c.Request.ParseMultipartForm(multipartMemory)
	case gin.MIMEPOSTForm:
		err = c.Request.ParseForm()
	default:
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.Request.PostFormValue(csrf.FieldName), nil
}
