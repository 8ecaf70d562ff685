package services

import (
	"context"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token carrying the user's id, name and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
