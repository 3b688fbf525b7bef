package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type applicationRepository interface {
	Create(ctx context.Context, app *models.CourseApplication) error
	List(ctx context.Context) ([]models.CourseApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

type applicationMetrics interface {
	RecordApplication(courseType string)
	RecordStatusChange(status string)
}

// ApplicationService handles course application intake and the status workflow.
type ApplicationService struct {
	repo      applicationRepository
	validator *validator.Validate
	logger    *zap.Logger
	metrics   applicationMetrics
}

// NewApplicationService constructs an ApplicationService. metrics may be nil.
func NewApplicationService(repo applicationRepository, validate *validator.Validate, logger *zap.Logger, metrics applicationMetrics) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ApplicationService{repo: repo, validator: validate, logger: logger, metrics: metrics}
}

// CourseLabel is the display name of a course type.
func CourseLabel(courseType string) string {
	if courseType == models.CourseKorean {
		return "Korean"
	}
	return "English"
}

// Submit stores a new application with status new.
func (s *ApplicationService) Submit(ctx context.Context, req dto.ApplyCourseRequest) (*models.CourseApplication, error) {
	req.CourseType = strings.TrimSpace(req.CourseType)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "form validation failed")
	}

	app := &models.CourseApplication{
		CourseType:     req.CourseType,
		ApplicantName:  req.Name,
		ApplicantPhone: req.Phone,
		Status:         models.ApplicationStatusNew,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error("failed to store course application", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit application")
	}
	if s.metrics != nil {
		s.metrics.RecordApplication(app.CourseType)
	}
	return app, nil
}

// List returns all applications, newest first.
func (s *ApplicationService) List(ctx context.Context) ([]models.CourseApplication, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list applications")
	}
	return apps, nil
}

// UpdateStatus moves one application to any of the known statuses. Unknown
// statuses and ids leave every row untouched.
func (s *ApplicationService) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest) error {
	id, err := strconv.ParseInt(strings.TrimSpace(req.ApplicationID), 10, 64)
	if err != nil || id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	status := models.ApplicationStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrInvalidStatus, "")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		s.logger.Error("failed to update application status", zap.Int64("application_id", id), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update status")
	}
	if s.metrics != nil {
		s.metrics.RecordStatusChange(string(status))
	}
	return nil
}
