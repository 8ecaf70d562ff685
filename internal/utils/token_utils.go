package utils

import (
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued to a logged-in user.
type Claims struct {
	jwt.RegisteredClaims
	Name string          `json:"name"`
	Role domain.UserRole `json:"role"`
}

// Actor returns the identity the claims describe.
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{UserID: c.Subject, UserName: c.Name, UserRole: c.Role}
}

// GenerateJWT generates a new JWT token for the actor.
func GenerateJWT(actor domain.Actor, secret string, expiryDuration time.Duration, issuer string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Name: actor.UserName,
		Role: actor.UserRole,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
