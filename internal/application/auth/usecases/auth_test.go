package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athenaeum/internal/domain/user"
	"athenaeum/internal/shared/errors"
)

func confirmedUser(t *testing.T, username, password string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(username, username+"@example.com", "Test", "User", "", role)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))
	require.NoError(t, u.SetPasswordHash("hashed:"+password))
	u.Confirm()
	return u
}

func TestRegisterUseCase_Execute(t *testing.T) {
	t.Run("registers an unconfirmed reader", func(t *testing.T) {
		var created *user.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				created = u
				return u.SetID(11)
			},
		}

		uc := NewRegisterUseCase(mockRepo, &mockHasher{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), RegisterCommand{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "long-enough-secret",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(11), result.UserID)
		require.NotNil(t, created)
		assert.Equal(t, user.RoleReader, created.Role())
		assert.False(t, created.AdminConfirmed())
		assert.Equal(t, "hashed:long-enough-secret", created.PasswordHash())
	})

	t.Run("taken username is a conflict", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return true, nil
			},
		}

		uc := NewRegisterUseCase(mockRepo, &mockHasher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), RegisterCommand{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "long-enough-secret",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), RegisterCommand{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "short",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("issues a token for confirmed credentials", func(t *testing.T) {
		u := confirmedUser(t, "alice", "secret-password", user.RoleReader)
		mockRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return u, nil
			},
		}

		uc := NewLoginUseCase(mockRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{Username: "alice", Password: "secret-password"})

		require.NoError(t, err)
		assert.Equal(t, "token", result.Token)
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, string(user.RoleReader), result.Role)
	})

	t.Run("unknown user, wrong password and unconfirmed account are indistinguishable", func(t *testing.T) {
		unconfirmed, err := user.NewUser("carol", "carol@example.com", "Carol", "User", "", user.RoleReader)
		require.NoError(t, err)
		require.NoError(t, unconfirmed.SetID(2))
		require.NoError(t, unconfirmed.SetPasswordHash("hashed:right-password"))

		cases := []struct {
			name     string
			stored   *user.User
			password string
		}{
			{"unknown user", nil, "whatever-pass"},
			{"wrong password", confirmedUser(t, "alice", "right-password", user.RoleReader), "wrong-password"},
			{"unconfirmed account", unconfirmed, "right-password"},
		}

		var messages []string
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := &mockUserRepository{
					GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
						return tc.stored, nil
					},
				}

				uc := NewLoginUseCase(mockRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
				_, err := uc.Execute(context.Background(), LoginCommand{Username: "whoever", Password: tc.password})

				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
				messages = append(messages, appErr.Message)
			})
		}

		for _, msg := range messages {
			assert.Equal(t, messages[0], msg)
		}
	})

	t.Run("requires credentials", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestConfirmUserUseCase_Execute(t *testing.T) {
	t.Run("confirms a pending account", func(t *testing.T) {
		pending, err := user.NewUser("alice", "alice@example.com", "Test", "User", "", user.RoleReader)
		require.NoError(t, err)
		require.NoError(t, pending.SetID(5))

		var saved *user.User
		mockRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return pending, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return nil
			},
		}

		uc := NewConfirmUserUseCase(mockRepo, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), ConfirmUserCommand{UserID: 5}))
		require.NotNil(t, saved)
		assert.True(t, saved.AdminConfirmed())
	})

	t.Run("missing user is not found", func(t *testing.T) {
		uc := NewConfirmUserUseCase(&mockUserRepository{}, &mockLogger{})
		err := uc.Execute(context.Background(), ConfirmUserCommand{UserID: 9})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
