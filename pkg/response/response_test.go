package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kland-web/pkg/csrf"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
)

func TestErrorUsesTypedStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin", nil)

	Abort(c, appErrors.ErrForbidden)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

func TestRedirectQueuesNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/apply-course", nil)

	Redirect(c, "/courses", flash.Success, "sent")
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/courses", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestPageIncludesNotices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/courses", nil)
	flash.Add(c, flash.Error, "oops")
	token := csrf.New("secret", false).Issue(c)

	Page(c, gin.H{"page": "courses"})

	var body struct {
		Meta struct {
			Notices   []flash.Notice `json:"notices"`
			CSRFToken string         `json:"csrf_token"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Meta.Notices, 1)
	assert.Equal(t, "oops", body.Meta.Notices[0].Message)
	assert.Equal(t, token, body.Meta.CSRFToken)
}
