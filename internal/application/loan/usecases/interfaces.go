package usecases

import "context"

// Executor interfaces decouple the HTTP handlers from the concrete use
// case implementations.

type AddItemToCartExecutor interface {
	Execute(ctx context.Context, cmd AddItemToCartCommand) error
}

type UpdateCartItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateCartItemCommand) error
}

type RemoveCartItemExecutor interface {
	Execute(ctx context.Context, cmd RemoveCartItemCommand) error
}

type GetCartExecutor interface {
	Execute(ctx context.Context, cmd GetCartCommand) (*GetCartResult, error)
}

type ConfirmLoanExecutor interface {
	Execute(ctx context.Context, cmd ConfirmLoanCommand) (*ConfirmLoanResult, error)
}

type ListLoansExecutor interface {
	Execute(ctx context.Context, cmd ListLoansCommand) (*ListLoansResult, error)
}

type GetLoanExecutor interface {
	Execute(ctx context.Context, cmd GetLoanCommand) (*GetLoanResult, error)
}

type RecordDeliveryExecutor interface {
	Execute(ctx context.Context, cmd RecordDeliveryCommand) error
}
