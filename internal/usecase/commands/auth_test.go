//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase/commands"
	commandsmock "storefront/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_AdminLogin(t *testing.T) {
	hash, err := password.Hash("s3nha-forte")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		password  string
		setupMock func(*commandsmock.MockTokenIssuer)
		wantToken string
		wantErr   error
	}{
		{
			name:     "success: correct password issues an admin token",
			password: "s3nha-forte",
			setupMock: func(m *commandsmock.MockTokenIssuer) {
				m.EXPECT().GenerateToken("admin", jwt.RoleAdmin).Return("signed-token", nil)
			},
			wantToken: "signed-token",
		},
		{
			name:      "error: wrong password",
			password:  "chute",
			setupMock: func(*commandsmock.MockTokenIssuer) {},
			wantErr:   errs.ErrInvalidCredentials,
		},
		{
			name:      "error: empty password",
			password:  "",
			setupMock: func(*commandsmock.MockTokenIssuer) {},
			wantErr:   errs.ErrInvalidCredentials,
		},
		{
			name:     "error: signing failure",
			password: "s3nha-forte",
			setupMock: func(m *commandsmock.MockTokenIssuer) {
				m.EXPECT().GenerateToken("admin", jwt.RoleAdmin).Return("", errors.New("bad key"))
			},
			wantErr: commands.ErrTokenGeneration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			issuer := commandsmock.NewMockTokenIssuer(ctrl)
			tc.setupMock(issuer)

			cmds := commands.NewAuthCommands(hash, issuer)
			res, err := cmds.AdminLogin(context.Background(), reqdto.AdminLoginRequest{Password: tc.password})

			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, res.Token)
		})
	}
}
