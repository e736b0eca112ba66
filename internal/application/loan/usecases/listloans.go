package usecases

import (
	"context"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/clock"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type ListLoansCommand struct {
	Username string
}

type ListLoansResult struct {
	Loans []LoanDTO
}

// ListLoansUseCase returns the loans the caller may see and stamps each
// with its current overdue figures.
type ListLoansUseCase struct {
	loanRepo      loan.Repository
	clock         clock.Clock
	penaltyPerDay float64
	logger        logger.Interface
}

func NewListLoansUseCase(loanRepo loan.Repository, clk clock.Clock, penaltyPerDay float64, logger logger.Interface) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo:      loanRepo,
		clock:         clk,
		penaltyPerDay: penaltyPerDay,
		logger:        logger,
	}
}

func (uc *ListLoansUseCase) Execute(ctx context.Context, cmd ListLoansCommand) (*ListLoansResult, error) {
	if cmd.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}

	loans, err := uc.loanRepo.ListLoans(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to list loans", "username", cmd.Username, "error", err)
		return nil, err
	}

	now := uc.clock.Now()
	result := &ListLoansResult{Loans: make([]LoanDTO, 0, len(loans))}
	for _, l := range loans {
		result.Loans = append(result.Loans, loanToDTO(l, now, uc.penaltyPerDay))
	}
	return result, nil
}
