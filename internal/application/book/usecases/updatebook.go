package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type UpdateBookCommand struct {
	BookID      uint
	Title       string
	Author      string
	Publisher   string
	ReleaseYear *int
	Copies      int
	GenreID     uint
	ImageURL    string
	IsAvailable bool
}

type UpdateBookResult struct {
	Book BookDTO
}

type UpdateBookUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewUpdateBookUseCase(bookRepo book.Repository, logger logger.Interface) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *UpdateBookUseCase) Execute(ctx context.Context, cmd UpdateBookCommand) (*UpdateBookResult, error) {
	if cmd.BookID == 0 {
		return nil, errors.NewValidationError("book ID is required")
	}
	if cmd.Title == "" {
		return nil, errors.NewValidationError("title is required")
	}
	if cmd.Author == "" {
		return nil, errors.NewValidationError("author is required")
	}

	existing, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		uc.logger.Errorw("failed to load book", "book_id", cmd.BookID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("book not found")
	}

	err = existing.UpdateDetails(
		cmd.Title,
		cmd.Author,
		cmd.Publisher,
		cmd.ReleaseYear,
		cmd.Copies,
		cmd.GenreID,
		cmd.ImageURL,
		cmd.IsAvailable,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update book", "book_id", cmd.BookID, "error", err)
		return nil, err
	}

	uc.logger.Infow("book updated", "book_id", existing.ID())
	return &UpdateBookResult{Book: bookToDTO(existing)}, nil
}
