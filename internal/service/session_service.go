package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type sessionStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionConfig controls issued session tokens.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// SessionService issues, verifies and revokes signed session tokens.
type SessionService struct {
	store  sessionStore
	config SessionConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(store sessionStore, config SessionConfig, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	if config.Issuer == "" {
		config.Issuer = "kland-web"
	}
	return &SessionService{store: store, config: config, logger: logger, now: time.Now}
}

// TTL is the lifetime of newly issued sessions.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Issue signs a new session for user.
func (s *SessionService) Issue(user *models.User) (string, *models.SessionClaims, error) {
	now := s.now().UTC()
	claims := &models.SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session")
	}
	return signed, claims, nil
}

// Parse validates a session token and rejects revoked sessions.
func (s *SessionService) Parse(ctx context.Context, raw string) (*models.SessionClaims, error) {
	if raw == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "missing session")
	}
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token invalid")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session")
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session")
	}

	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check session")
	}
	if revoked {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session revoked")
	}
	return claims, nil
}

// Revoke invalidates a session for the rest of its lifetime.
func (s *SessionService) Revoke(ctx context.Context, claims *models.SessionClaims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	remaining := s.config.TTL
	if claims.ExpiresAt != nil {
		remaining = claims.ExpiresAt.Time.Sub(s.now())
	}
	if remaining <= 0 {
		return nil
	}
	if err := s.store.Revoke(ctx, claims.ID, remaining); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	return nil
}
