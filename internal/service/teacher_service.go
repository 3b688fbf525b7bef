package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

type photoUploader interface {
	SaveTeacherPhoto(upload *dto.PhotoUpload) (string, error)
}

type uploadMetrics interface {
	RecordUpload(outcome string)
}

// TeacherService manages teacher profiles and their photos.
type TeacherService struct {
	repo      teacherRepository
	uploader  photoUploader
	validator *validator.Validate
	logger    *zap.Logger
	metrics   uploadMetrics
}

// NewTeacherService constructs a TeacherService. metrics may be nil.
func NewTeacherService(repo teacherRepository, uploader photoUploader, validate *validator.Validate, logger *zap.Logger, metrics uploadMetrics) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{repo: repo, uploader: uploader, validator: validate, logger: logger, metrics: metrics}
}

// ListActive returns teachers shown publicly, by display order.
func (s *TeacherService) ListActive(ctx context.Context) ([]models.Teacher, error) {
	return s.list(ctx, true)
}

// ListAll returns every teacher, by display order.
func (s *TeacherService) ListAll(ctx context.Context) ([]models.Teacher, error) {
	return s.list(ctx, false)
}

func (s *TeacherService) list(ctx context.Context, activeOnly bool) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// Create adds a teacher. A rejected photo rejects the whole request.
func (s *TeacherService) Create(ctx context.Context, req dto.TeacherRequest) (*models.Teacher, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	photo, err := s.storePhoto(req.Photo)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:      req.Name,
		Role:      req.Role,
		Photo:     photo,
		RawTags:   optionalString(req.Tags),
		IsFounder: req.IsFounder,
		Order:     req.Order,
		IsActive:  true,
	}
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		s.logger.Error("failed to create teacher", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save teacher")
	}
	return teacher, nil
}

// Update edits a teacher. The photo and active flag are kept unless the
// request carries new values.
func (s *TeacherService) Update(ctx context.Context, id int64, req dto.TeacherRequest) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	photo, err := s.storePhoto(req.Photo)
	if err != nil {
		return nil, err
	}

	teacher.Name = req.Name
	teacher.Role = req.Role
	teacher.RawTags = optionalString(req.Tags)
	teacher.IsFounder = req.IsFounder
	teacher.Order = req.Order
	if req.IsActive != nil {
		teacher.IsActive = *req.IsActive
	}
	if photo != nil {
		teacher.Photo = photo
	}
	if err := s.repo.Update(ctx, teacher); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		s.logger.Error("failed to update teacher", zap.Int64("teacher_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save teacher")
	}
	return teacher, nil
}

// Delete removes a teacher record.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	return nil
}

func (s *TeacherService) validate(req *dto.TeacherRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.TrimSpace(req.Role)
	req.Tags = strings.TrimSpace(req.Tags)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name and role are required")
	}
	return nil
}

func (s *TeacherService) storePhoto(upload *dto.PhotoUpload) (*string, error) {
	if s.uploader == nil || upload == nil {
		return nil, nil
	}
	path, err := s.uploader.SaveTeacherPhoto(upload)
	if err != nil {
		s.recordUpload("rejected")
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	s.recordUpload("stored")
	return &path, nil
}

func (s *TeacherService) recordUpload(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordUpload(outcome)
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
