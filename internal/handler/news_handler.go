package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

type newsService interface {
	ListPublished(ctx context.Context, limit int) ([]models.News, error)
	Get(ctx context.Context, id int64, includeUnpublished bool) (*models.News, error)
	Create(ctx context.Context, req dto.NewsRequest) (*models.News, error)
	Update(ctx context.Context, id int64, req dto.NewsRequest) (*models.News, error)
	Delete(ctx context.Context, id int64) error
}

// NewsHandler serves the public feed and the admin news actions.
type NewsHandler struct {
	news newsService
}

// NewNewsHandler constructs a NewsHandler.
func NewNewsHandler(news newsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// List godoc
// @Summary Published news, newest first
// @Tags News
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.news.ListPublished(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, gin.H{"news": items})
}

// Detail godoc
// @Summary News entry
// @Tags News
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /news/{id} [get]
func (h *NewsHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.news.Get(c.Request.Context(), id, currentUser(c).IsAdmin())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, gin.H{"news": item})
}

// AdminIndex sends admins to the panel where news are managed. It also
// answers GET on the form-only news endpoints.
func (h *NewsHandler) AdminIndex(c *gin.Context) {
	response.Redirect(c, "/admin", flash.Info, "")
}

// Create godoc
// @Summary Add news
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image_url formData string false "Image URL"
// @Param is_published formData string false "Present means published"
// @Success 303 "Redirect to /admin"
// @Failure 403 {object} response.Envelope
// @Router /admin/news/add [post]
func (h *NewsHandler) Create(c *gin.Context) {
	req, ok := bindNews(c)
	if !ok {
		return
	}
	if _, err := h.news.Create(c.Request.Context(), req); err != nil {
		redirectOnError(c, "/admin", err)
		return
	}
	response.Redirect(c, "/admin", flash.Success, "News added successfully!")
}

// Update godoc
// @Summary Edit news
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param id path int true "News ID"
// @Success 303 "Redirect to /admin"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/news/edit/{id} [post]
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindNews(c)
	if !ok {
		return
	}
	if _, err := h.news.Update(c.Request.Context(), id, req); err != nil {
		redirectOnError(c, "/admin", err)
		return
	}
	response.Redirect(c, "/admin", flash.Success, "News updated successfully!")
}

// Delete godoc
// @Summary Delete news
// @Tags Admin
// @Param id path int true "News ID"
// @Success 303 "Redirect to /admin"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/news/delete/{id} [get]
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.news.Delete(c.Request.Context(), id); err != nil {
		redirectOnError(c, "/admin", err)
		return
	}
	response.Redirect(c, "/admin", flash.Success, "News deleted successfully!")
}

func bindNews(c *gin.Context) (dto.NewsRequest, bool) {
	var req dto.NewsRequest
	if !parseForm(c) {
		return req, false
	}
	req.Title = c.PostForm("title")
	req.Content = c.PostForm("content")
	req.ImageURL = c.PostForm("image_url")
	req.IsPublished = formHas(c, "is_published")
	return req, true
}
