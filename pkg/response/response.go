package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/pkg/csrf"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Page renders the data a page needs together with the notices queued for it
// and the anti-forgery token its forms must echo. Notices are consumed, so a
// reload shows them only once.
func Page(c *gin.Context, data interface{}) {
	meta := map[string]interface{}{}
	if notices := flash.Consume(c); len(notices) > 0 {
		meta["notices"] = notices
	}
	if token := csrf.Token(c); token != "" {
		meta["csrf_token"] = token
	}
	if len(meta) == 0 {
		meta = nil
	}
	JSON(c, http.StatusOK, data, meta)
}

// Redirect answers a form submission with 303 See Other, optionally queueing a notice.
func Redirect(c *gin.Context, location string, severity flash.Severity, message string) {
	if message != "" {
		flash.Add(c, severity, message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Abort writes the error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
