package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type DeleteBookCommand struct {
	BookID uint
}

// DeleteBookUseCase soft-deletes a catalog entry. The storage layer
// refuses while loan history still references the book, surfacing a
// conflict instead of breaking old loans.
type DeleteBookUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewDeleteBookUseCase(bookRepo book.Repository, logger logger.Interface) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, cmd DeleteBookCommand) error {
	if cmd.BookID == 0 {
		return errors.NewValidationError("book ID is required")
	}

	if err := uc.bookRepo.Delete(ctx, cmd.BookID); err != nil {
		uc.logger.Errorw("failed to delete book", "book_id", cmd.BookID, "error", err)
		return err
	}

	uc.logger.Infow("book deleted", "book_id", cmd.BookID)
	return nil
}
