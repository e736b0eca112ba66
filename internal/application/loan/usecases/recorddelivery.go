package usecases

import (
	"context"
	"time"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/clock"
	"athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type RecordDeliveryCommand struct {
	LoanID uint
	// DeliveryDate overrides the clock when set; nil means "delivered now".
	DeliveryDate *time.Time
}

type RecordDeliveryUseCase struct {
	loanRepo loan.Repository
	clock    clock.Clock
	logger   logger.Interface
}

func NewRecordDeliveryUseCase(loanRepo loan.Repository, clk clock.Clock, logger logger.Interface) *RecordDeliveryUseCase {
	return &RecordDeliveryUseCase{
		loanRepo: loanRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *RecordDeliveryUseCase) Execute(ctx context.Context, cmd RecordDeliveryCommand) error {
	if cmd.LoanID == 0 {
		return errors.NewValidationError("loan ID is required")
	}

	deliveredAt := uc.clock.Now()
	if cmd.DeliveryDate != nil {
		deliveredAt = cmd.DeliveryDate.UTC()
	}

	if err := uc.loanRepo.RecordDelivery(ctx, cmd.LoanID, deliveredAt); err != nil {
		uc.logger.Errorw("failed to record delivery", "loan_id", cmd.LoanID, "error", err)
		return err
	}

	uc.logger.Infow("delivery recorded", "loan_id", cmd.LoanID, "delivery_date", deliveredAt)
	return nil
}
