package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenConsumeOnNextRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/apply-course", nil)
	Add(c, Success, "saved")
	Add(c, Info, "again")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	last := cookies[len(cookies)-1]
	assert.Equal(t, CookieName, last.Name)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req.AddCookie(last)
	c2.Request = req

	notices := Consume(c2)
	require.Len(t, notices, 2)
	assert.Equal(t, Notice{Severity: Success, Message: "saved"}, notices[0])
	assert.Equal(t, Info, notices[1].Severity)

	assert.Nil(t, Consume(c2))
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestConsumeIgnoresGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%"})
	c.Request = req

	assert.Nil(t, Consume(c))
}
