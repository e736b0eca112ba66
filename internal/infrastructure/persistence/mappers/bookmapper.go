package mappers

import (
	"athenaeum/internal/domain/book"
	"athenaeum/internal/infrastructure/persistence/models"
)

// BookMapper handles the conversion between Book domain entities and
// persistence models.
type BookMapper interface {
	ToModel(b *book.Book) *models.BookModel
	ToDomain(model *models.BookModel) (*book.Book, error)
	ToDomainList(bookModels []*models.BookModel) ([]*book.Book, error)
}

type BookMapperImpl struct{}

func NewBookMapper() BookMapper {
	return &BookMapperImpl{}
}

func (m *BookMapperImpl) ToModel(b *book.Book) *models.BookModel {
	return &models.BookModel{
		ID:            b.ID(),
		Title:         b.Title(),
		Author:        b.Author(),
		Publisher:     b.Publisher(),
		ReleaseYear:   b.ReleaseYear(),
		Copies:        b.Copies(),
		GenreID:       b.GenreID(),
		ImageURL:      b.ImageURL(),
		IsAvailable:   b.IsAvailable(),
		WasDeleted:    b.WasDeleted(),
		CatalogedByID: b.CatalogedByID(),
		CreatedAt:     b.CreatedAt().UnixMilli(),
		UpdatedAt:     b.UpdatedAt().UnixMilli(),
	}
}

func (m *BookMapperImpl) ToDomain(model *models.BookModel) (*book.Book, error) {
	return book.ReconstructBook(
		model.ID,
		model.Title,
		model.Author,
		model.Publisher,
		model.ReleaseYear,
		model.Copies,
		model.GenreID,
		model.ImageURL,
		model.IsAvailable,
		model.WasDeleted,
		model.CatalogedByID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *BookMapperImpl) ToDomainList(bookModels []*models.BookModel) ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(bookModels))
	for _, model := range bookModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		books = append(books, entity)
	}
	return books, nil
}
