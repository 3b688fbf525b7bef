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

type messageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// MessageService handles contact form submissions.
type MessageService struct {
	repo      messageRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs a MessageService.
func NewMessageService(repo messageRepository, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MessageService{repo: repo, validator: validate, logger: logger}
}

// Submit stores a contact message.
func (s *MessageService) Submit(ctx context.Context, req dto.ContactRequest) (*models.Message, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, phone and message are required")
	}
	msg := &models.Message{Name: req.Name, Phone: req.Phone, Message: req.Message}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error("failed to store message", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send message")
	}
	return msg, nil
}

// List returns every message.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return msgs, nil
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete message")
	}
	return nil
}
