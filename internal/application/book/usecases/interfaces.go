package usecases

import "context"

// Executor interfaces decouple the HTTP handlers from the concrete use
// case implementations.

type CreateBookExecutor interface {
	Execute(ctx context.Context, cmd CreateBookCommand) (*CreateBookResult, error)
}

type UpdateBookExecutor interface {
	Execute(ctx context.Context, cmd UpdateBookCommand) (*UpdateBookResult, error)
}

type DeleteBookExecutor interface {
	Execute(ctx context.Context, cmd DeleteBookCommand) error
}

type GetBookExecutor interface {
	Execute(ctx context.Context, cmd GetBookCommand) (*GetBookResult, error)
}

type ListBooksExecutor interface {
	Execute(ctx context.Context, cmd ListBooksCommand) (*ListBooksResult, error)
}
