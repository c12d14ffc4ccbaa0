package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tripx-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/tripx-backend/internal/lib/password"
	"github.com/magabrotheeeer/tripx-backend/internal/models"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UsersMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newMaker() jwt.Maker {
	return jwt.NewJWTMaker("test-secret", time.Hour)
}

func TestService_Register(t *testing.T) {
	users := new(UsersMock)
	svc := NewService(users, newMaker())

	users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "testuser" &&
			u.Role == "user" &&
			u.PasswordHash != "secret123" &&
			password.CompareHash(u.PasswordHash, "secret123") == nil
	})).Return("uid-1", nil).Once()

	uid, err := svc.Register(context.Background(), "test@example.com", "testuser", "secret123", "Test User")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	users.AssertExpectations(t)
}

func TestService_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	stored := &models.User{
		UID:          "uid-1",
		Username:     "testuser",
		PasswordHash: hash,
		Role:         "user",
	}

	tests := []struct {
		name       string
		setupMocks func(users *UsersMock)
		username   string
		password   string
		wantErr    error
	}{
		{
			name: "success login",
			setupMocks: func(users *UsersMock) {
				users.On("GetUserByUsername", mock.Anything, "testuser").Return(stored, nil).Once()
			},
			username: "testuser",
			password: "secret123",
		},
		{
			name: "wrong password",
			setupMocks: func(users *UsersMock) {
				users.On("GetUserByUsername", mock.Anything, "testuser").Return(stored, nil).Once()
			},
			username: "testuser",
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			setupMocks: func(users *UsersMock) {
				users.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, ErrInvalidCredentials).Once()
			},
			username: "ghost",
			password: "secret123",
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			svc := NewService(users, newMaker())

			tt.setupMocks(users)

			token, role, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user", role)

			claims, err := newMaker().ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, "testuser", claims.Username)
			assert.Equal(t, "uid-1", claims.UserUID)
		})
	}
}
