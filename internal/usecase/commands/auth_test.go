//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/pkg/jwt"
	"voucher-hub/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ValidPassword(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	uc, err := commands.NewAuthCommands("hunter2", svc)
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.SubjectAdmin, claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	uc, err := commands.NewAuthCommands("hunter2", svc)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, errs.ErrInvalidPassword)
}
