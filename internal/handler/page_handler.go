package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/internal/service"
	"github.com/noah-isme/kland-web/pkg/response"
)

const homeNewsLimit = 3

// PartnerUniversities are shown on the about page.
var PartnerUniversities = []string{
	"Kyungnam College", "Yeungnam University", "Kyungil University",
	"Konyang University", "Kyungin Women's University", "Kyung Hee University",
	"Busan University of Foreign Studies", "Kunjang University", "Kukje University",
	"Chung Cheong University", "Cheongju University", "Youngsan University",
	"Daekyeung University",
}

type publishedNewsLister interface {
	ListPublished(ctx context.Context, limit int) ([]models.News, error)
}

type activePeriodLister interface {
	ListActive(ctx context.Context) ([]models.AdmissionPeriod, error)
}

type activeTeacherLister interface {
	ListActive(ctx context.Context) ([]models.Teacher, error)
}

// Course is an offered course type.
type Course struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// PageHandler serves the public informational pages.
type PageHandler struct {
	news     publishedNewsLister
	periods  activePeriodLister
	teachers activeTeacherLister
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(news publishedNewsLister, periods activePeriodLister, teachers activeTeacherLister) *PageHandler {
	return &PageHandler{news: news, periods: periods, teachers: teachers}
}

// Home godoc
// @Summary Home page data
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *PageHandler) Home(c *gin.Context) {
	news, err := h.news.ListPublished(c.Request.Context(), homeNewsLimit)
	if err != nil {
		response.Error(c, err)
		return
	}
	periods, err := h.periods.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, gin.H{"news": news, "admission_periods": periods})
}

// About godoc
// @Summary About page with partner universities and active teachers
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /about [get]
func (h *PageHandler) About(c *gin.Context) {
	teachers, err := h.teachers.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, gin.H{"universities": PartnerUniversities, "teachers": teachers})
}

// Courses godoc
// @Summary Offered courses
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *PageHandler) Courses(c *gin.Context) {
	courses := []Course{
		{Type: models.CourseKorean, Label: service.CourseLabel(models.CourseKorean)},
		{Type: "english", Label: service.CourseLabel("english")},
	}
	response.Page(c, gin.H{"courses": courses})
}

// Corey godoc
// @Summary Study-in-Korea page with active admission periods
// @Tags Pages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /corey [get]
func (h *PageHandler) Corey(c *gin.Context) {
	periods, err := h.periods.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, gin.H{"admission_periods": periods})
}

// AdmissionKorea keeps the old address working.
func (h *PageHandler) AdmissionKorea(c *gin.Context) {
	c.Redirect(http.StatusFound, "/corey")
}
