package usecases

import (
	"context"

	"athenaeum/internal/domain/user"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

// PasswordHasher abstracts the bcrypt service for the auth use cases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type RegisterCommand struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

type RegisterResult struct {
	UserID   uint
	Username string
}

// RegisterUseCase creates a reader account. New accounts stay unusable
// until an administrator confirms them.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("username already registered")
	}
	taken, err = uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, cmd.FirstName, cmd.LastName, cmd.Phone, user.RoleReader)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError("failed to set password")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered, awaiting confirmation",
		"user_id", newUser.ID(), "username", newUser.Username())
	return &RegisterResult{UserID: newUser.ID(), Username: newUser.Username()}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
