package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type RemoveCartItemCommand struct {
	CartItemID uint
}

type RemoveCartItemUseCase struct {
	loanRepo loan.Repository
	logger   logger.Interface
}

func NewRemoveCartItemUseCase(loanRepo loan.Repository, logger logger.Interface) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

func (uc *RemoveCartItemUseCase) Execute(ctx context.Context, cmd RemoveCartItemCommand) error {
	if cmd.CartItemID == 0 {
		return errors.NewValidationError("cart item ID is required")
	}

	if err := uc.loanRepo.RemoveCartItem(ctx, cmd.CartItemID); err != nil {
		uc.logger.Errorw("failed to remove cart item",
			"cart_item_id", cmd.CartItemID, "error", err)
		return err
	}
	return nil
}
