package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/response"
)

// BodyLimit caps request bodies at maxBytes. Declared oversize bodies are
// refused up front; others fail on read with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Abort(c, appErrors.ErrPayloadTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from reading past the body limit.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
