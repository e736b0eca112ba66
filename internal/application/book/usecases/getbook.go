package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type GetBookCommand struct {
	BookID uint
}

type GetBookResult struct {
	Book BookDTO
}

type GetBookUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewGetBookUseCase(bookRepo book.Repository, logger logger.Interface) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, cmd GetBookCommand) (*GetBookResult, error) {
	if cmd.BookID == 0 {
		return nil, errors.NewValidationError("book ID is required")
	}

	b, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		uc.logger.Errorw("failed to get book", "book_id", cmd.BookID, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, errors.NewNotFoundError("book not found")
	}

	return &GetBookResult{Book: bookToDTO(b)}, nil
}
