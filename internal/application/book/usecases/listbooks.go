package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

const maxPageSize = 100

type ListBooksCommand struct {
	Title    string
	Author   string
	Page     int
	PageSize int
	OrderBy  string
	Order    string
}

type ListBooksResult struct {
	Books    []BookDTO
	Total    int64
	Page     int
	PageSize int
}

type ListBooksUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewListBooksUseCase(bookRepo book.Repository, logger logger.Interface) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context, cmd ListBooksCommand) (*ListBooksResult, error) {
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 {
		cmd.PageSize = 20
	}
	if cmd.PageSize > maxPageSize {
		return nil, errors.NewValidationError("page size exceeds the maximum of 100")
	}

	filter := book.ListFilter{
		Title:    cmd.Title,
		Author:   cmd.Author,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
		OrderBy:  cmd.OrderBy,
		Order:    cmd.Order,
	}

	books, total, err := uc.bookRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list books", "error", err)
		return nil, err
	}

	result := &ListBooksResult{
		Books:    make([]BookDTO, 0, len(books)),
		Total:    total,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	for _, b := range books {
		result.Books = append(result.Books, bookToDTO(b))
	}
	return result, nil
}
