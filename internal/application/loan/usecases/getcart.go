package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type GetCartCommand struct {
	Username string
}

type GetCartResult struct {
	Items         []CartItemDTO
	TotalQuantity int
}

type GetCartUseCase struct {
	loanRepo loan.Repository
	logger   logger.Interface
}

func NewGetCartUseCase(loanRepo loan.Repository, logger logger.Interface) *GetCartUseCase {
	return &GetCartUseCase{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

func (uc *GetCartUseCase) Execute(ctx context.Context, cmd GetCartCommand) (*GetCartResult, error) {
	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}

	items, err := uc.loanRepo.GetCart(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get cart", "username", cmd.Username, "error", err)
		return nil, err
	}

	result := &GetCartResult{Items: make([]CartItemDTO, 0, len(items))}
	for _, item := range items {
		result.Items = append(result.Items, cartItemToDTO(item))
		result.TotalQuantity += item.Quantity()
	}
	return result, nil
}
