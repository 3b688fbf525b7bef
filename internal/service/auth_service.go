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
	"github.com/noah-isme/kland-web/internal/repository"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

const dummyPassword = "timing-equaliser"

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Check(plaintext, digest string) bool
}

// AuthService implements registration and credential checks.
type AuthService struct {
	repo      authUserRepository
	hasher    passwordHasher
	validator *validator.Validate
	logger    *zap.Logger
	dummyHash string
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, hasher passwordHasher, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn("failed to prepare dummy password hash", zap.Error(err))
	}
	return &AuthService{repo: repo, hasher: hasher, validator: validate, logger: logger, dummyHash: dummy}
}

// NormalizeEmail case-folds and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a student account.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = NormalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, registrationMessage(err))
	}

	_, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, appErrors.Clone(appErrors.ErrConflict, "this email is already in use")
	case !errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "registration failed, please try again")
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "registration failed, please try again")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: digest,
		Role:         models.RoleStudent,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "this email is already in use")
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "registration failed, please try again")
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.hasher.Check(req.Password, s.dummyHash)
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	return user, nil
}

// UserByID resolves a session identity.
func (s *AuthService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session user no longer exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

func registrationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid registration form"
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "Confirm":
		return "passwords do not match"
	case fe.Tag() == "min":
		return "password must be at least 6 characters"
	case fe.Tag() == "max":
		return strings.ToLower(fe.Field()) + " is too long"
	default:
		return strings.ToLower(fe.Field()) + " is required"
	}
}
