package auth

import (
	"context"
	"strings"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// Login verifies credentials and returns a signed session token plus its
	// lifetime in seconds.
	Login(ctx context.Context, username, password string) (string, int64, error)
	// Verify checks the raw Authorization header value and returns the
	// authenticated username.
	Verify(ctx context.Context, authorization string) (string, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

type service struct {
	repo   Repository
	tokens *TokenManager
}

func NewService(repo Repository, tokens *TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Login(ctx context.Context, username, password string) (string, int64, error) {
	log := logger.FromCtx(ctx).With(zap.String("username", username))

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", 0, err
	}
	if cred == nil || !CheckPasswordHash(password, cred.PasswordHash) {
		// same error either way: credential existence must not leak
		log.Warn("login rejected")
		return "", 0, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(cred.Username, cred.TokenEpoch)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		return "", 0, err
	}

	log.Info("login succeeded")
	return token, int64(s.tokens.TTL().Seconds()), nil
}

func (s *service) Verify(ctx context.Context, authorization string) (string, error) {
	if authorization == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authorization)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformedToken
	}

	claims, err := s.tokens.Parse(parts[1])
	if err != nil {
		return "", err
	}

	cred, err := s.repo.FindByUsername(ctx, claims.Username)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", ErrTokenInvalid
	}
	if claims.Epoch != cred.TokenEpoch {
		return "", ErrTokenStale
	}

	return claims.Username, nil
}

func (s *service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromCtx(ctx).With(zap.String("username", username))

	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	if newPassword == oldPassword {
		return ErrPasswordReused
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if cred == nil || !CheckPasswordHash(oldPassword, cred.PasswordHash) {
		log.Warn("password change rejected")
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.RotatePassword(ctx, username, hash); err != nil {
		return err
	}

	log.Info("password changed")
	return nil
}
