package commands

import (
	"context"

	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/pkg/jwt"
	"voucher-hub/internal/pkg/password"
)

type LoginResult struct {
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, candidate string) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

// NewAuthCommands hashes the configured operator password once so the
// plaintext never sticks around for per-request comparison.
func NewAuthCommands(operatorPassword string, jwtService *jwt.Service) (AuthCommands, error) {
	hash, err := password.Hash(operatorPassword)
	if err != nil {
		return nil, errs.Wrap(err, "hash operator password")
	}
	return &authCommandsImpl{passwordHash: hash, jwtService: jwtService}, nil
}

func (uc *authCommandsImpl) Login(_ context.Context, candidate string) (*LoginResult, error) {
	if err := password.Compare(uc.passwordHash, candidate); err != nil {
		return nil, errs.ErrInvalidPassword
	}

	token, err := uc.jwtService.GenerateToken()
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}
	return &LoginResult{AccessToken: token}, nil
}
