package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type ConfirmLoanCommand struct {
	Username string
}

type ConfirmLoanResult struct {
	Confirmed bool
}

// ConfirmLoanUseCase turns the user's staged cart into one durable loan.
// The storage layer guarantees the exchange is atomic; a false result
// means there was nothing to confirm, not a failure.
type ConfirmLoanUseCase struct {
	loanRepo loan.Repository
	logger   logger.Interface
}

func NewConfirmLoanUseCase(loanRepo loan.Repository, logger logger.Interface) *ConfirmLoanUseCase {
	return &ConfirmLoanUseCase{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

func (uc *ConfirmLoanUseCase) Execute(ctx context.Context, cmd ConfirmLoanCommand) (*ConfirmLoanResult, error) {
	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}

	confirmed, err := uc.loanRepo.ConfirmLoan(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to confirm loan", "username", cmd.Username, "error", err)
		return nil, err
	}

	if !confirmed {
		uc.logger.Infow("nothing to confirm", "username", cmd.Username)
	}
	return &ConfirmLoanResult{Confirmed: confirmed}, nil
}
