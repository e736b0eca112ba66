package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type CreateBookCommand struct {
	Title         string
	Author        string
	Publisher     string
	ReleaseYear   *int
	Copies        int
	GenreID       uint
	ImageURL      string
	IsAvailable   bool
	CatalogedByID uint
}

type CreateBookResult struct {
	Book BookDTO
}

type CreateBookUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewCreateBookUseCase(bookRepo book.Repository, logger logger.Interface) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) (*CreateBookResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create book command", "error", err)
		return nil, err
	}

	newBook, err := book.NewBook(
		cmd.Title,
		cmd.Author,
		cmd.Publisher,
		cmd.ReleaseYear,
		cmd.Copies,
		cmd.GenreID,
		cmd.ImageURL,
		cmd.IsAvailable,
		cmd.CatalogedByID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create book entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookRepo.Create(ctx, newBook); err != nil {
		uc.logger.Errorw("failed to save book", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("book cataloged", "book_id", newBook.ID(), "title", newBook.Title())
	return &CreateBookResult{Book: bookToDTO(newBook)}, nil
}

func (uc *CreateBookUseCase) validateCommand(cmd CreateBookCommand) error {
	if cmd.Title == "" {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters")
	}
	if cmd.Author == "" {
		return errors.NewValidationError("author is required")
	}
	if cmd.Copies < 0 {
		return errors.NewValidationError("copies cannot be negative")
	}
	if cmd.CatalogedByID == 0 {
		return errors.NewValidationError("cataloging user is required")
	}
	return nil
}
