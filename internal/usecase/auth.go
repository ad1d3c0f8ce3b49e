package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/jwt"
	"salon-booking-api/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenValidation    = errors.New("token validation failed")
)

// TokenValidator is the slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// AuthUseCase authenticates the one fixed admin identity and issues
// short-lived bearer tokens. There is no refresh and no revocation.
type AuthUseCase interface {
	Login(ctx context.Context, username, plainPassword string) (string, error)
	TokenValidator
}

type authUseCaseImpl struct {
	adminCfg   config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(adminCfg config.AdminConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		adminCfg:   adminCfg,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, username, plainPassword string) (string, error) {
	if username != a.adminCfg.Username {
		return "", ErrInvalidCredentials
	}

	if err := password.ComparePassword(a.adminCfg.PasswordHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(username)
	if err != nil {
		return "", ErrTokenValidation
	}
	return token, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", ErrTokenValidation
	}
	return claims.Username, nil
}
