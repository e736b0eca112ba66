package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type AddItemToCartCommand struct {
	Username string
	BookID   uint
	Quantity int
}

type AddItemToCartUseCase struct {
	loanRepo loan.Repository
	logger   logger.Interface
}

func NewAddItemToCartUseCase(loanRepo loan.Repository, logger logger.Interface) *AddItemToCartUseCase {
	return &AddItemToCartUseCase{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

func (uc *AddItemToCartUseCase) Execute(ctx context.Context, cmd AddItemToCartCommand) error {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add item to cart command", "error", err)
		return err
	}

	if err := uc.loanRepo.AddItemToCart(ctx, cmd.Username, cmd.BookID, cmd.Quantity); err != nil {
		uc.logger.Errorw("failed to add item to cart",
			"username", cmd.Username, "book_id", cmd.BookID, "error", err)
		return err
	}

	uc.logger.Infow("item staged in cart",
		"username", cmd.Username, "book_id", cmd.BookID, "quantity", cmd.Quantity)
	return nil
}

func (uc *AddItemToCartUseCase) validateCommand(cmd AddItemToCartCommand) error {
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}
	if cmd.BookID == 0 {
		return errors.NewValidationError("book ID is required")
	}
	if cmd.Quantity < 1 {
		return errors.NewValidationError("quantity must be at least 1")
	}
	return nil
}
