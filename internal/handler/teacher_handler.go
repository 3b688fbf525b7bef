package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/internal/service"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/flash"
	"github.com/noah-isme/kland-web/pkg/response"
)

const teachersPath = "/admin/teachers"

type teacherService interface {
	Create(ctx context.Context, req dto.TeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req dto.TeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherHandler manages teacher profiles in the back-office. Add and edit
// share one form endpoint and are told apart by the add_teacher and
// edit_teacher fields.
type TeacherHandler struct {
	teachers  teacherService
	dashboard dashboardBuilder
	logger    *zap.Logger
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(teachers teacherService, dashboard dashboardBuilder, logger *zap.Logger) *TeacherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherHandler{teachers: teachers, dashboard: dashboard, logger: logger}
}

// Page godoc
// @Summary Admin panel opened on the teachers tab
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/teachers [get]
func (h *TeacherHandler) Page(c *gin.Context) {
	dashboard, err := h.dashboard.Build(c.Request.Context(), service.DashboardTabTeachers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, dashboard)
}

// Submit godoc
// @Summary Add or edit a teacher
// @Description Multipart form. add_teacher selects the add form (name, role, tags, is_founder, order, photo); edit_teacher selects the edit form (teacher_id and edit_ prefixed fields, edit_photo).
// @Tags Admin
// @Accept multipart/form-data
// @Param add_teacher formData string false "Add discriminator"
// @Param edit_teacher formData string false "Edit discriminator"
// @Param photo formData file false "Photo for add (png, jpg, jpeg, gif)"
// @Param edit_photo formData file false "Photo for edit"
// @Success 303 "Redirect to /admin/teachers"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Router /admin/teachers [post]
func (h *TeacherHandler) Submit(c *gin.Context) {
	if !parseForm(c) {
		return
	}
	switch {
	case formHas(c, "add_teacher"):
		h.create(c)
	case formHas(c, "edit_teacher"):
		h.update(c)
	default:
		h.Page(c)
	}
}

func (h *TeacherHandler) create(c *gin.Context) {
	req, closePhoto, ok := h.bindTeacher(c, "")
	if !ok {
		return
	}
	defer closePhoto()

	if _, err := h.teachers.Create(c.Request.Context(), req); err != nil {
		redirectOnError(c, teachersPath, err)
		return
	}
	response.Redirect(c, teachersPath, flash.Success, "Teacher added successfully")
}

func (h *TeacherHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("teacher_id")), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "teacher not found"))
		return
	}
	req, closePhoto, ok := h.bindTeacher(c, "edit_")
	if !ok {
		return
	}
	defer closePhoto()

	if _, err := h.teachers.Update(c.Request.Context(), id, req); err != nil {
		redirectOnError(c, teachersPath, err)
		return
	}
	response.Redirect(c, teachersPath, flash.Success, "Teacher updated successfully")
}

// Delete godoc
// @Summary Delete a teacher
// @Tags Admin
// @Param id path int true "Teacher ID"
// @Success 303 "Redirect to /admin/teachers"
// @Failure 404 {object} response.Envelope
// @Router /admin/teachers/delete/{id} [get]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.teachers.Delete(c.Request.Context(), id); err != nil {
		redirectOnError(c, teachersPath, err)
		return
	}
	response.Redirect(c, teachersPath, flash.Success, "Teacher deleted successfully")
}

// bindTeacher reads the add form (prefix "") or the edit form (prefix
// "edit_"). The returned func closes the uploaded file, if any.
func (h *TeacherHandler) bindTeacher(c *gin.Context, prefix string) (dto.TeacherRequest, func(), bool) {
	req := dto.TeacherRequest{
		Name:      c.PostForm(prefix + "name"),
		Role:      c.PostForm(prefix + "role"),
		Tags:      c.PostForm(prefix + "tags"),
		IsFounder: formHas(c, prefix+"is_founder"),
		Order:     formInt(c, prefix+"order"),
	}
	if formHas(c, prefix+"is_active_present") {
		active := formHas(c, prefix+"is_active")
		req.IsActive = &active
	}

	noop := func() {}
	header, err := c.FormFile(prefix + "photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, noop, true
		}
		h.logger.Warn("failed to read photo upload", zap.Error(err))
		response.Redirect(c, teachersPath, flash.Error, "failed to read photo")
		return req, noop, false
	}
	if header.Filename == "" {
		return req, noop, true
	}
	file, err := header.Open()
	if err != nil {
		h.logger.Warn("failed to open photo upload", zap.Error(err))
		response.Redirect(c, teachersPath, flash.Error, "failed to read photo")
		return req, noop, false
	}
	req.Photo = &dto.PhotoUpload{Filename: header.Filename, Content: file}
	return req, func() { _ = file.Close() }, true
}
