package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/platform/config"
	"github.com/SscSPs/stallchain/internal/utils"
)

// tokenService issues JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...Option) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(opts),
		cfg:         cfg,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := s.Now()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.Actor(), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}
