package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{Auth: config.Auth{Secret: "test-secret", TokenDuration: time.Hour}}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()
	clientID := "cl-1"

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "success normalizes email",
			email:    " Client@Example.com ",
			password: "S3cret!pass",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "client@example.com").Return(&domain.User{
					ID: 7, Name: "Client", Email: "client@example.com", Active: true,
					RoleID: domain.RoleClient, ClientID: &clientID, PasswordHash: hashed(t, "S3cret!pass"),
				}, nil)
			},
		},
		{
			name:     "missing data",
			setup:    func(repo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "unknown user",
			email:    "ghost@example.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").Return(nil, nil)
			},
			wantErr:  ErrUserNotFound,
			wantCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "disabled user",
			email:    "off@example.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "off@example.com").Return(&domain.User{ID: 2, Active: false}, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "wrong",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "admin@example.com").Return(&domain.User{
					ID: 1, Active: true, PasswordHash: hashed(t, "right"),
				}, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "database failure",
			email:    "admin@example.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "admin@example.com").Return(nil, errors.New("boom"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			svc := NewService(repo, testConfig())
			token, err := svc.LoginUser(ctx, tt.email, tt.password)

			if tt.wantCode != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, domain.RoleClient, claims.UserRoleID)
			require.NotNil(t, claims.UserClientID)
			assert.True(t, claims.CanSeeClient("cl-1"))
			assert.False(t, claims.CanSeeClient("cl-2"))
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	svc := NewService(nil, testConfig())
	user := &domain.User{ID: 1, RoleID: domain.RoleAdmin}

	token, err := svc.generateJWT(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.CanSeeClient("any"))

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(nil, &config.Config{Auth: config.Auth{Secret: "other"}})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := svc.generateJWT(user)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := NewService(repo, testConfig())

	repo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, PasswordHash: "hash"}, nil)
	user, err := svc.GetUserProfile(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	repo.EXPECT().GetUserByID(ctx, 4).Return(nil, nil)
	_, err = svc.GetUserProfile(ctx, 4)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	svc := NewService(repo, testConfig())

	repo.EXPECT().GetUserByEmail(ctx, "new@example.com").Return(nil, nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
		u.ID = 10
		return u, nil
	})

	user, err := svc.CreateUser(ctx, &domain.User{Name: "New", Email: "New@Example.com", Active: true}, "pass")
	require.NoError(t, err)
	assert.Equal(t, 10, user.ID)
	assert.Equal(t, domain.RoleClient, user.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass")))

	repo.EXPECT().GetUserByEmail(ctx, "new@example.com").Return(&domain.User{ID: 10}, nil)
	_, err = svc.CreateUser(ctx, &domain.User{Name: "New", Email: "new@example.com"}, "pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.CreateUser(ctx, &domain.User{}, "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
