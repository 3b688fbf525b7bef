package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/internal/service"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

const admissionPeriodsPath = "/admin/admission-periods"

type admissionPeriodService interface {
	ListAll(ctx context.Context) ([]models.AdmissionPeriod, error)
	Create(ctx context.Context, req dto.AdmissionPeriodRequest) (*models.AdmissionPeriod, error)
	Update(ctx context.Context, id int64, req dto.AdmissionPeriodRequest) (*models.AdmissionPeriod, error)
	Delete(ctx context.Context, id int64) error
}

type dashboardBuilder interface {
	Build(ctx context.Context, activeTab string) (*models.AdminDashboard, error)
}

// AdmissionHandler manages admission periods in the back-office.
type AdmissionHandler struct {
	periods   admissionPeriodService
	dashboard dashboardBuilder
}

// NewAdmissionHandler constructs an AdmissionHandler.
func NewAdmissionHandler(periods admissionPeriodService, dashboard dashboardBuilder) *AdmissionHandler {
	return &AdmissionHandler{periods: periods, dashboard: dashboard}
}

// Page godoc
// @Summary Admin panel opened on the admission tab
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/admission-periods [get]
func (h *AdmissionHandler) Page(c *gin.Context) {
	dashboard, err := h.dashboard.Build(c.Request.Context(), service.DashboardTabAdmission)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, dashboard)
}

// Create godoc
// @Summary Add admission period
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param application_start formData string true "Applications open"
// @Param application_end formData string true "Applications close"
// @Param studies_start formData string true "Studies start"
// @Param is_active formData string false "Present means active"
// @Success 303 "Redirect to /admin/admission-periods"
// @Router /admin/admission-periods/add [post]
func (h *AdmissionHandler) Create(c *gin.Context) {
	req, ok := bindPeriod(c)
	if !ok {
		return
	}
	if _, err := h.periods.Create(c.Request.Context(), req); err != nil {
		redirectOnError(c, admissionPeriodsPath, err)
		return
	}
	response.Redirect(c, admissionPeriodsPath, flash.Success, "Admission period added")
}

// Update godoc
// @Summary Edit admission period
// @Tags Admin
// @Param id path int true "Period ID"
// @Success 303 "Redirect to /admin/admission-periods"
// @Failure 404 {object} response.Envelope
// @Router /admin/admission-periods/edit/{id} [post]
func (h *AdmissionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindPeriod(c)
	if !ok {
		return
	}
	if _, err := h.periods.Update(c.Request.Context(), id, req); err != nil {
		redirectOnError(c, admissionPeriodsPath, err)
		return
	}
	response.Redirect(c, admissionPeriodsPath, flash.Success, "Admission period updated")
}

// Delete godoc
// @Summary Delete admission period
// @Tags Admin
// @Param id path int true "Period ID"
// @Success 303 "Redirect to /admin/admission-periods"
// @Failure 404 {object} response.Envelope
// @Router /admin/admission-periods/delete/{id} [post]
func (h *AdmissionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.periods.Delete(c.Request.Context(), id); err != nil {
		redirectOnError(c, admissionPeriodsPath, err)
		return
	}
	response.Redirect(c, admissionPeriodsPath, flash.Success, "Admission period deleted")
}

// Debug godoc
// @Summary Raw dump of every admission period
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /debug-periods [get]
func (h *AdmissionHandler) Debug(c *gin.Context) {
	periods, err := h.periods.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, periods, map[string]interface{}{"count": len(periods)})
}

func bindPeriod(c *gin.Context) (dto.AdmissionPeriodRequest, bool) {
	var req dto.AdmissionPeriodRequest
	if !parseForm(c) {
		return req, false
	}
	req.Name = c.PostForm("name")
	req.ApplicationStart = c.PostForm("application_start")
	req.ApplicationEnd = c.PostForm("application_end")
	req.StudiesStart = c.PostForm("studies_start")
	req.IsActive = formHas(c, "is_active")
	return req, true
}
