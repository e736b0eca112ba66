package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/clock"
	"athenaeum/internal/shared/errors"
)

func reconstructTestLoan(t *testing.T, id uint, loanDate time.Time) *loan.Loan {
	t.Helper()
	first, err := loan.ReconstructLoanDetail(1, id, 10, 100, 2, false)
	require.NoError(t, err)
	second, err := loan.ReconstructLoanDetail(2, id, 10, 101, 1, false)
	require.NoError(t, err)

	l, err := loan.ReconstructLoan(id, 10, loanDate, loanDate.AddDate(0, 0, loan.DefaultGracePeriodDays), nil, false, []*loan.LoanDetail{first, second})
	require.NoError(t, err)
	return l
}

func TestListLoansUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("stamps overdue figures on each loan", func(t *testing.T) {
		// Created 18 days ago with a 15 day grace period, so 3 days late.
		overdue := reconstructTestLoan(t, 1, now.AddDate(0, 0, -18))
		fresh := reconstructTestLoan(t, 2, now)

		mockRepo := &mockLoanRepository{
			ListLoansFunc: func(ctx context.Context, username string) ([]*loan.Loan, error) {
				return []*loan.Loan{overdue, fresh}, nil
			},
		}

		uc := NewListLoansUseCase(mockRepo, clock.Fixed(now), loan.DefaultPenaltyPerDay, &mockLogger{})
		result, err := uc.Execute(context.Background(), ListLoansCommand{Username: "alice"})

		require.NoError(t, err)
		require.Len(t, result.Loans, 2)

		assert.Equal(t, 3, result.Loans[0].DaysOverdue)
		assert.InDelta(t, 12.0, result.Loans[0].PenaltyPrice, 0.001)
		assert.Equal(t, 3, result.Loans[0].Quantity)

		assert.Zero(t, result.Loans[1].DaysOverdue)
		assert.Zero(t, result.Loans[1].PenaltyPrice)
	})

	t.Run("requires a username", func(t *testing.T) {
		uc := NewListLoansUseCase(&mockLoanRepository{}, clock.Fixed(now), loan.DefaultPenaltyPerDay, &mockLogger{})
		_, err := uc.Execute(context.Background(), ListLoansCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetLoanUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("resolves a loan by id", func(t *testing.T) {
		l := reconstructTestLoan(t, 42, now)
		mockRepo := &mockLoanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*loan.Loan, error) {
				assert.Equal(t, uint(42), id)
				return l, nil
			},
		}

		uc := NewGetLoanUseCase(mockRepo, clock.Fixed(now), loan.DefaultPenaltyPerDay, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetLoanCommand{LoanID: 42})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.Loan.ID)
		assert.Len(t, result.Loan.Items, 2)
	})

	t.Run("missing loan is not found", func(t *testing.T) {
		uc := NewGetLoanUseCase(&mockLoanRepository{}, clock.Fixed(now), loan.DefaultPenaltyPerDay, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetLoanCommand{LoanID: 9999})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("requires an id", func(t *testing.T) {
		uc := NewGetLoanUseCase(&mockLoanRepository{}, clock.Fixed(now), loan.DefaultPenaltyPerDay, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetLoanCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRecordDeliveryUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("defaults to the clock", func(t *testing.T) {
		var gotDate time.Time
		mockRepo := &mockLoanRepository{
			RecordDeliveryFunc: func(ctx context.Context, loanID uint, deliveryDate time.Time) error {
				gotDate = deliveryDate
				return nil
			},
		}

		uc := NewRecordDeliveryUseCase(mockRepo, clock.Fixed(now), &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), RecordDeliveryCommand{LoanID: 1}))
		assert.True(t, gotDate.Equal(now))
	})

	t.Run("uses an explicit date when given", func(t *testing.T) {
		explicit := now.AddDate(0, 0, -2)
		var gotDate time.Time
		mockRepo := &mockLoanRepository{
			RecordDeliveryFunc: func(ctx context.Context, loanID uint, deliveryDate time.Time) error {
				gotDate = deliveryDate
				return nil
			},
		}

		uc := NewRecordDeliveryUseCase(mockRepo, clock.Fixed(now), &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), RecordDeliveryCommand{LoanID: 1, DeliveryDate: &explicit}))
		assert.True(t, gotDate.Equal(explicit))
	})

	t.Run("requires an id", func(t *testing.T) {
		uc := NewRecordDeliveryUseCase(&mockLoanRepository{}, clock.Fixed(now), &mockLogger{})
		err := uc.Execute(context.Background(), RecordDeliveryCommand{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
