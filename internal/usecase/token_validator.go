package usecase

import (
	"log/slog"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/mock_token_validator.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateAdmin accepts only unexpired tokens carrying the admin role.
	ValidateAdmin(tokenString string) (subject string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAdmin(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		slog.Debug("admin token rejected", "error", err.Error())
		return "", errs.ErrUnauthorized
	}
	if claims.Role != jwt.RoleAdmin {
		return "", errs.ErrUnauthorized
	}
	return claims.Subject, nil
}
