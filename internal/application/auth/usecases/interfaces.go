package usecases

import "context"

// Executor interfaces decouple the HTTP handlers from the concrete use
// case implementations.

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ConfirmUserExecutor interface {
	Execute(ctx context.Context, cmd ConfirmUserCommand) error
}
