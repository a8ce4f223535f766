package commands

import (
	"context"
	"log/slog"

	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

var ErrTokenGeneration = errs.New("token generation failed")

const adminSubject = "admin"

type TokenIssuer interface {
	GenerateToken(subject, role string) (string, error)
}

type LoginResult struct {
	Token string
}

type AuthCommands interface {
	AdminLogin(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	tokens       TokenIssuer
}

func NewAuthCommands(passwordHash string, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (a *authCommandsImpl) AdminLogin(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error) {
	if err := password.Verify(a.passwordHash, req.Password); err != nil {
		if errs.Is(err, password.ErrInvalidHash) {
			slog.ErrorContext(ctx, "admin password hash is unusable", "error", err)
		} else {
			slog.InfoContext(ctx, "admin login rejected")
		}
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(adminSubject, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token}, nil
}
