package usecases

import (
	"context"
	"time"

	"athenaeum/internal/domain/user"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

// TokenIssuer abstracts the JWT service for the login use case.
type TokenIssuer interface {
	Generate(userID uint, username string, role user.Role) (string, time.Time, error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token              string
	ExpiresAt          time.Time
	UserID             uint
	Username           string
	Role               string
	MustChangePassword bool
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute checks the credentials and issues a token. Every rejection is
// the same unauthorized error: failed lookups, wrong passwords and
// unconfirmed accounts must be indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		uc.logger.Debugw("login attempt for unknown user", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("login attempt with wrong password", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.AdminConfirmed() {
		uc.logger.Infow("login attempt before confirmation", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())
	return &LoginResult{
		Token:              token,
		ExpiresAt:          expiresAt,
		UserID:             u.ID(),
		Username:           u.Username(),
		Role:               string(u.Role()),
		MustChangePassword: u.MustChangePassword(),
	}, nil
}
