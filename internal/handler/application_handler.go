package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/internal/service"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

type applicationService interface {
	Submit(ctx context.Context, req dto.ApplyCourseRequest) (*models.CourseApplication, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) error
}

type applicationExporter interface {
	Applications(ctx context.Context, format dto.ExportFormat) (*dto.ExportFile, error)
}

// ApplicationHandler serves course application intake and the admin workflow.
type ApplicationHandler struct {
	applications applicationService
	exports      applicationExporter
	logger       *zap.Logger
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(applications applicationService, exports applicationExporter, logger *zap.Logger) *ApplicationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationHandler{applications: applications, exports: exports, logger: logger}
}

// Apply godoc
// @Summary Apply for a course
// @Tags Courses
// @Accept x-www-form-urlencoded
// @Param course_type formData string true "korean or english"
// @Param name formData string true "Applicant name"
// @Param phone formData string true "Applicant phone"
// @Success 303 "Redirect to /courses"
// @Router /apply-course [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Redirect(c, "/courses", flash.Error, "form validation failed")
		return
	}
	app, err := h.applications.Submit(c.Request.Context(), req)
	if err != nil {
		redirectOnError(c, "/courses", err)
		return
	}
	response.Redirect(c, "/courses", flash.Success, fmt.Sprintf("Application for the %s course has been sent!", service.CourseLabel(app.CourseType)))
}

// UpdateStatus godoc
// @Summary Change a course application status
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param application_id formData int true "Application ID"
// @Param status formData string true "new, contacted or approved"
// @Success 303 "Redirect to /admin"
// @Failure 403 {object} response.Envelope
// @Router /update-status [post]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Redirect(c, "/admin", flash.Error, "Status update failed")
		return
	}
	if err := h.applications.UpdateStatus(c.Request.Context(), req); err != nil {
		h.logger.Info("status update rejected", zap.String("application_id", req.ApplicationID), zap.String("status", req.Status), zap.Error(err))
		response.Redirect(c, "/admin", flash.Error, "Status update failed")
		return
	}
	response.Redirect(c, "/admin", flash.Success, "Status updated")
}

// Export godoc
// @Summary Download every course application
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/applications/export [get]
func (h *ApplicationHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Applications(c.Request.Context(), format)
	if err != nil {
		response.Error(c, appErrors.FromError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
