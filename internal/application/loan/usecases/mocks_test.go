package usecases

import (
	"context"
	"time"

	"athenaeum/internal/domain/loan"
	"athenaeum/internal/shared/logger"
)

type mockLoanRepository struct {
	AddItemToCartFunc      func(ctx context.Context, username string, bookID uint, quantity int) error
	UpdateCartQuantityFunc func(ctx context.Context, cartItemID uint, delta int) error
	RemoveCartItemFunc     func(ctx context.Context, cartItemID uint) error
	GetCartFunc            func(ctx context.Context, username string) ([]*loan.CartItem, error)
	ConfirmLoanFunc        func(ctx context.Context, username string) (bool, error)
	ListLoansFunc          func(ctx context.Context, username string) ([]*loan.Loan, error)
	GetByIDFunc            func(ctx context.Context, id uint) (*loan.Loan, error)
	RecordDeliveryFunc     func(ctx context.Context, loanID uint, deliveryDate time.Time) error
}

func (m *mockLoanRepository) AddItemToCart(ctx context.Context, username string, bookID uint, quantity int) error {
	if m.AddItemToCartFunc != nil {
		return m.AddItemToCartFunc(ctx, username, bookID, quantity)
	}
	return nil
}

func (m *mockLoanRepository) UpdateCartQuantity(ctx context.Context, cartItemID uint, delta int) error {
	if m.UpdateCartQuantityFunc != nil {
		return m.UpdateCartQuantityFunc(ctx, cartItemID, delta)
	}
	return nil
}

func (m *mockLoanRepository) RemoveCartItem(ctx context.Context, cartItemID uint) error {
	if m.RemoveCartItemFunc != nil {
		return m.RemoveCartItemFunc(ctx, cartItemID)
	}
	return nil
}

func (m *mockLoanRepository) GetCart(ctx context.Context, username string) ([]*loan.CartItem, error) {
	if m.GetCartFunc != nil {
		return m.GetCartFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockLoanRepository) ConfirmLoan(ctx context.Context, username string) (bool, error) {
	if m.ConfirmLoanFunc != nil {
		return m.ConfirmLoanFunc(ctx, username)
	}
	return false, nil
}

func (m *mockLoanRepository) ListLoans(ctx context.Context, username string) ([]*loan.Loan, error) {
	if m.ListLoansFunc != nil {
		return m.ListLoansFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockLoanRepository) GetByID(ctx context.Context, id uint) (*loan.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockLoanRepository) RecordDelivery(ctx context.Context, loanID uint, deliveryDate time.Time) error {
	if m.RecordDeliveryFunc != nil {
		return m.RecordDeliveryFunc(ctx, loanID, deliveryDate)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
