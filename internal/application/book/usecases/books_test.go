package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/shared/errors"
)

func newTestBook(t *testing.T, id uint, title string) *book.Book {
	t.Helper()
	b, err := book.NewBook(title, "An Author", "A Press", nil, 2, 0, "", true, 1)
	require.NoError(t, err)
	if id != 0 {
		require.NoError(t, b.SetID(id))
	}
	return b
}

func TestCreateBookUseCase_Execute(t *testing.T) {
	t.Run("creates and returns the cataloged book", func(t *testing.T) {
		mockRepo := &mockBookRepository{
			CreateFunc: func(ctx context.Context, b *book.Book) error {
				return b.SetID(7)
			},
		}

		uc := NewCreateBookUseCase(mockRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateBookCommand{
			Title:         "The Pragmatic Programmer",
			Author:        "Hunt and Thomas",
			Copies:        2,
			IsAvailable:   true,
			CatalogedByID: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), result.Book.ID)
		assert.Equal(t, "The Pragmatic Programmer", result.Book.Title)
	})

	tests := []struct {
		name    string
		command CreateBookCommand
	}{
		{"missing title", CreateBookCommand{Author: "A", CatalogedByID: 1}},
		{"missing author", CreateBookCommand{Title: "T", CatalogedByID: 1}},
		{"negative copies", CreateBookCommand{Title: "T", Author: "A", Copies: -1, CatalogedByID: 1}},
		{"missing cataloging user", CreateBookCommand{Title: "T", Author: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateBookUseCase(&mockBookRepository{}, &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.command)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUpdateBookUseCase_Execute(t *testing.T) {
	t.Run("updates an existing book", func(t *testing.T) {
		existing := newTestBook(t, 5, "Old Title")
		var saved *book.Book
		mockRepo := &mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*book.Book, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, b *book.Book) error {
				saved = b
				return nil
			},
		}

		uc := NewUpdateBookUseCase(mockRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpdateBookCommand{
			BookID:      5,
			Title:       "New Title",
			Author:      "An Author",
			Copies:      2,
			IsAvailable: true,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "New Title", saved.Title())
		assert.Equal(t, "New Title", result.Book.Title)
	})

	t.Run("missing book is not found", func(t *testing.T) {
		uc := NewUpdateBookUseCase(&mockBookRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpdateBookCommand{BookID: 5, Title: "T", Author: "A"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteBookUseCase_Execute(t *testing.T) {
	t.Run("delegates deletion", func(t *testing.T) {
		var gotID uint
		mockRepo := &mockBookRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				gotID = id
				return nil
			},
		}

		uc := NewDeleteBookUseCase(mockRepo, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), DeleteBookCommand{BookID: 9}))
		assert.Equal(t, uint(9), gotID)
	})

	t.Run("propagates the reference conflict", func(t *testing.T) {
		mockRepo := &mockBookRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return errors.NewConflictError("book is referenced by loans and cannot be deleted")
			},
		}

		uc := NewDeleteBookUseCase(mockRepo, &mockLogger{})
		err := uc.Execute(context.Background(), DeleteBookCommand{BookID: 9})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestGetBookUseCase_Execute(t *testing.T) {
	t.Run("returns the book", func(t *testing.T) {
		mockRepo := &mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*book.Book, error) {
				return newTestBook(t, id, "Found Book"), nil
			},
		}

		uc := NewGetBookUseCase(mockRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetBookCommand{BookID: 3})
		require.NoError(t, err)
		assert.Equal(t, "Found Book", result.Book.Title)
	})

	t.Run("missing book is not found", func(t *testing.T) {
		uc := NewGetBookUseCase(&mockBookRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetBookCommand{BookID: 3})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListBooksUseCase_Execute(t *testing.T) {
	t.Run("applies pagination defaults", func(t *testing.T) {
		var gotFilter book.ListFilter
		mockRepo := &mockBookRepository{
			ListFunc: func(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
				gotFilter = filter
				return []*book.Book{newTestBook(t, 1, "Only Book")}, 1, nil
			},
		}

		uc := NewListBooksUseCase(mockRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), ListBooksCommand{})

		require.NoError(t, err)
		assert.Equal(t, 1, gotFilter.Page)
		assert.Equal(t, 20, gotFilter.PageSize)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Books, 1)
	})

	t.Run("caps the page size", func(t *testing.T) {
		uc := NewListBooksUseCase(&mockBookRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), ListBooksCommand{PageSize: 500})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
