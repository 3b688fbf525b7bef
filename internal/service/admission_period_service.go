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

type admissionPeriodRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.AdmissionPeriod, error)
	Create(ctx context.Context, period *models.AdmissionPeriod) error
	Update(ctx context.Context, period *models.AdmissionPeriod) error
	Delete(ctx context.Context, id int64) error
}

// AdmissionPeriodService manages admission periods.
type AdmissionPeriodService struct {
	repo      admissionPeriodRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdmissionPeriodService constructs the service.
func NewAdmissionPeriodService(repo admissionPeriodRepository, validate *validator.Validate, logger *zap.Logger) *AdmissionPeriodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AdmissionPeriodService{repo: repo, validator: validate, logger: logger}
}

// ListActive returns periods visible to the public.
func (s *AdmissionPeriodService) ListActive(ctx context.Context) ([]models.AdmissionPeriod, error) {
	return s.list(ctx, true)
}

// ListAll returns every period, newest first.
func (s *AdmissionPeriodService) ListAll(ctx context.Context) ([]models.AdmissionPeriod, error) {
	return s.list(ctx, false)
}

func (s *AdmissionPeriodService) list(ctx context.Context, activeOnly bool) ([]models.AdmissionPeriod, error) {
	periods, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list admission periods")
	}
	return periods, nil
}

// Create adds a period.
func (s *AdmissionPeriodService) Create(ctx context.Context, req dto.AdmissionPeriodRequest) (*models.AdmissionPeriod, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	period := periodFromRequest(req)
	if err := s.repo.Create(ctx, period); err != nil {
		s.logger.Error("failed to create admission period", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save admission period")
	}
	return period, nil
}

// Update replaces a period.
func (s *AdmissionPeriodService) Update(ctx context.Context, id int64, req dto.AdmissionPeriodRequest) (*models.AdmissionPeriod, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	period := periodFromRequest(req)
	period.ID = id
	if err := s.repo.Update(ctx, period); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admission period not found")
		}
		s.logger.Error("failed to update admission period", zap.Int64("period_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save admission period")
	}
	return period, nil
}

// Delete removes a period.
func (s *AdmissionPeriodService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "admission period not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete admission period")
	}
	return nil
}

func (s *AdmissionPeriodService) validate(req *dto.AdmissionPeriodRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.ApplicationStart = strings.TrimSpace(req.ApplicationStart)
	req.ApplicationEnd = strings.TrimSpace(req.ApplicationEnd)
	req.StudiesStart = strings.TrimSpace(req.StudiesStart)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all period fields are required")
	}
	return nil
}

func periodFromRequest(req dto.AdmissionPeriodRequest) *models.AdmissionPeriod {
	return &models.AdmissionPeriod{
		Name:             req.Name,
		ApplicationStart: req.ApplicationStart,
		ApplicationEnd:   req.ApplicationEnd,
		StudiesStart:     req.StudiesStart,
		IsActive:         req.IsActive,
	}
}
