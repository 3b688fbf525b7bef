// Package csrf issues and checks double-submit tokens. A token is a random
// nonce plus its HMAC under the server secret, so a cookie planted by another
// origin cannot be paired with a value of the attacker's choosing.
package csrf

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName holds the token issued to the browser.
	CookieName = "csrf_token"
	// FieldName is the form field and query parameter carrying the token back.
	FieldName = "csrf_token"
	// HeaderName carries the token for script-driven requests.
	HeaderName = "X-CSRF-Token"
)

const contextKey = "csrf.token"

// Guard mints and verifies tokens for one secret.
type Guard struct {
	secret []byte
	secure bool
}

// New builds a Guard. secure marks the cookie HTTPS-only.
func New(secret string, secure bool) *Guard {
	return &Guard{secret: []byte(secret), secure: secure}
}

// NewToken mints a fresh signed token.
func (g *Guard) NewToken() string {
	nonce := uuid.NewString()
	return nonce + "." + g.sign(nonce)
}

// Valid reports whether token carries this guard's signature.
func (g *Guard) Valid(token string) bool {
	nonce, sig, ok := strings.Cut(token, ".")
	if !ok || nonce == "" || sig == "" {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(g.sign(nonce)))
}

// Issue returns the token for the current request, setting a new cookie when
// the browser holds none or one this guard did not sign.
func (g *Guard) Issue(c *gin.Context) string {
	if token := Token(c); token != "" {
		return token
	}
	token, err := c.Cookie(CookieName)
	if err != nil || !g.Valid(token) {
		token = g.NewToken()
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   g.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	c.Set(contextKey, token)
	return token
}

// Verify reports whether submitted matches the signed token in the request cookie.
func (g *Guard) Verify(c *gin.Context, submitted string) bool {
	cookie, err := c.Cookie(CookieName)
	if err != nil || submitted == "" || !g.Valid(cookie) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(submitted)) == 1
}

// Token returns the token issued for the current request, or "".
func Token(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

func (g *Guard) sign(nonce string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
