// Package flash carries one-shot, severity-tagged notices between a form
// submission and the next page the client reads.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Severity tags a notice.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// CookieName is the cookie holding pending notices.
const CookieName = "flash"

const pendingKey = "flash.pending"

// Notice is a single transient message.
type Notice struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Add queues a notice for the next read. Notices already pending in the
// request cookie are kept.
func Add(c *gin.Context, severity Severity, message string) {
	pending := pendingNotices(c)
	pending = append(pending, Notice{Severity: severity, Message: message})
	c.Set(pendingKey, pending)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    encode(pending),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Consume returns the pending notices and clears them.
func Consume(c *gin.Context) []Notice {
	notices := pendingNotices(c)
	if len(notices) == 0 {
		return nil
	}
	c.Set(pendingKey, []Notice(nil))
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return notices
}

func pendingNotices(c *gin.Context) []Notice {
	if v, ok := c.Get(pendingKey); ok {
		if notices, ok := v.([]Notice); ok {
			return notices
		}
	}
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	return decode(raw)
}

func encode(notices []Notice) string {
	data, _ := json.Marshal(notices)
	return base64.RawURLEncoding.EncodeToString(data)
}

func decode(raw string) []Notice {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil
	}
	return notices
}
