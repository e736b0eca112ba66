package book

import "context"

// ListFilter narrows and pages catalog listings.
type ListFilter struct {
	Title    string
	Author   string
	Page     int
	PageSize int
	OrderBy  string
	Order    string
}

// Repository is the persistence contract for the book catalog.
// Lookups skip soft-deleted rows; Delete soft-deletes and surfaces a
// conflict when loan lines still reference the book.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context, filter ListFilter) ([]*Book, int64, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}
