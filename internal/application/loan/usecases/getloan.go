package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/clock"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type GetLoanCommand struct {
	LoanID uint
}

type GetLoanResult struct {
	Loan LoanDTO
}

type GetLoanUseCase struct {
	loanRepo      loan.Repository
	clock         clock.Clock
	penaltyPerDay float64
	logger        logger.Interface
}

func NewGetLoanUseCase(loanRepo loan.Repository, clk clock.Clock, penaltyPerDay float64, logger logger.Interface) *GetLoanUseCase {
	return &GetLoanUseCase{
		loanRepo:      loanRepo,
		clock:         clk,
		penaltyPerDay: penaltyPerDay,
		logger:        logger,
	}
}

func (uc *GetLoanUseCase) Execute(ctx context.Context, cmd GetLoanCommand) (*GetLoanResult, error) {
	if cmd.LoanID == 0 {
		return nil, errors.NewValidationError("loan ID is required")
	}

	l, err := uc.loanRepo.GetByID(ctx, cmd.LoanID)
	if err != nil {
		uc.logger.Errorw("failed to get loan", "loan_id", cmd.LoanID, "error", err)
		return nil, err
	}
	if l == nil {
		return nil, errors.NewNotFoundError("loan not found")
	}

	return &GetLoanResult{Loan: loanToDTO(l, uc.clock.Now(), uc.penaltyPerDay)}, nil
}
