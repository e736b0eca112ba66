package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type UpdateCartItemCommand struct {
	CartItemID uint
	Delta      int
}

// UpdateCartItemUseCase applies a signed quantity delta to one staged
// line. Deltas that would empty the line are ignored by the storage
// layer; removal is an explicit, separate operation.
type UpdateCartItemUseCase struct {
	loanRepo loan.Repository
	logger   logger.Interface
}

func NewUpdateCartItemUseCase(loanRepo loan.Repository, logger logger.Interface) *UpdateCartItemUseCase {
	return &UpdateCartItemUseCase{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

func (uc *UpdateCartItemUseCase) Execute(ctx context.Context, cmd UpdateCartItemCommand) error {
	if cmd.CartItemID == 0 {
		return errors.NewValidationError("cart item ID is required")
	}
	if cmd.Delta == 0 {
		return errors.NewValidationError("quantity delta cannot be zero")
	}

	if err := uc.loanRepo.UpdateCartQuantity(ctx, cmd.CartItemID, cmd.Delta); err != nil {
		uc.logger.Errorw("failed to update cart quantity",
			"cart_item_id", cmd.CartItemID, "delta", cmd.Delta, "error", err)
		return err
	}
	return nil
}
