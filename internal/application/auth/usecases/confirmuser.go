package usecases

import (
	"context"

	"athenaeum/internal/domain/user"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type ConfirmUserCommand struct {
	UserID uint
}

// ConfirmUserUseCase flips the administrative confirmation flag that
// gates login. Confirming an already confirmed account is harmless.
type ConfirmUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewConfirmUserUseCase(userRepo user.Repository, logger logger.Interface) *ConfirmUserUseCase {
	return &ConfirmUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ConfirmUserUseCase) Execute(ctx context.Context, cmd ConfirmUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	u.Confirm()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to confirm user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user confirmed", "user_id", cmd.UserID)
	return nil
}
