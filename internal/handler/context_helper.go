package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/internal/middleware"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

// maxMultipartMemory bounds in-memory multipart parts; larger parts spill to disk.
const maxMultipartMemory = 8 << 20

func currentUser(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}

// pathID parses a numeric path parameter. Non-numeric ids do not match any
// record, so they answer 404.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.ErrNotFound)
		return 0, false
	}
	return id, true
}

// parseForm reads the request body once so later form lookups see every
// field. It reports false after answering the request itself.
func parseForm(c *gin.Context) bool {
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		err = c.Request.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = c.Request.ParseForm()
	}
	if err == nil {
		return true
	}
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, appErrors.ErrPayloadTooLarge)
		return false
	}
	response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed form"))
	return false
}

// formHas reports whether key was submitted, whatever its value. Checkbox
// booleans use this.
func formHas(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}

// formInt parses an integer field, falling back to 0.
func formInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.PostForm(key)))
	if err != nil {
		return 0
	}
	return value
}

// redirectOnError answers a failed form write. Missing records and denied
// access keep their status; everything else goes back to location with an
// error notice.
func redirectOnError(c *gin.Context, location string, err error) {
	appErr := appErrors.FromError(err)
	switch appErr.Status {
	case http.StatusNotFound, http.StatusForbidden, http.StatusRequestEntityTooLarge:
		response.Error(c, appErr)
		return
	}
	response.Redirect(c, location, flash.Error, appErr.Message)
}

// safeNext accepts only local absolute paths as post-login targets.
func safeNext(next string) bool {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return false
	}
	u, err := url.Parse(next)
	return err == nil && u.Scheme == "" && u.Host == ""
}
