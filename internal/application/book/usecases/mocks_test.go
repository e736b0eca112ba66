package usecases

import (
	"context"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/logger"
)

type mockBookRepository struct {
	CreateFunc  func(ctx context.Context, b *book.Book) error
	GetByIDFunc func(ctx context.Context, id uint) (*book.Book, error)
	ListFunc    func(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error)
	UpdateFunc  func(ctx context.Context, b *book.Book) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ExistsFunc  func(ctx context.Context, id uint) (bool, error)
}

func (m *mockBookRepository) Create(ctx context.Context, b *book.Book) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookRepository) GetByID(ctx context.Context, id uint) (*book.Book, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookRepository) List(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBookRepository) Update(ctx context.Context, b *book.Book) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
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
