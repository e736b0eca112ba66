package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"athenaeum/internal/domain/book"
	"athenaeum/internal/infrastructure/persistence/mappers"
	"athenaeum/internal/infrastructure/persistence/models"
	sharedb "athenaeum/internal/shared/db"
	apperrors "athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

// BookRepository layers catalog-specific queries on top of the shared
// generic persistence operations.
type BookRepository struct {
	base   *GenericRepository[models.BookModel, *models.BookModel]
	db     *gorm.DB
	mapper mappers.BookMapper
	logger logger.Interface
}

func NewBookRepository(db *gorm.DB, mapper mappers.BookMapper, log logger.Interface) *BookRepository {
	return &BookRepository{
		base:   NewGenericRepository[models.BookModel, *models.BookModel](db, log),
		db:     db,
		mapper: mapper,
		logger: log.Named("book_repository"),
	}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	model := r.mapper.ToModel(b)
	if err := r.base.Create(ctx, model); err != nil {
		return err
	}
	b.SetID(model.ID)
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*book.Book, error) {
	model, err := r.base.GetByID(ctx, id)
	if err != nil || model == nil {
		return nil, err
	}
	return r.mapper.ToDomain(model)
}

func (r *BookRepository) List(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BookModel{}).
		Scopes(sharedb.NotDeleted())

	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Author != "" {
		query = query.Where("author LIKE ?", "%"+filter.Author+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count books", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to count books")
	}

	orderBy := "title"
	switch filter.OrderBy {
	case "author", "release_year", "created_at":
		orderBy = filter.OrderBy
	}
	order := "ASC"
	if filter.Order == "desc" {
		order = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, order))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var bookModels []*models.BookModel
	if err := query.Find(&bookModels).Error; err != nil {
		r.logger.Errorw("failed to list books", "error", err)
		return nil, 0, apperrors.NewInternalError("failed to list books")
	}

	books, err := r.mapper.ToDomainList(bookModels)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	return r.base.Update(ctx, r.mapper.ToModel(b))
}

// Delete soft-deletes a book, refusing while loan history or open carts
// still reference it. The reference check mirrors the RESTRICT foreign
// keys that guard physical deletion at the schema level.
func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	model, err := r.base.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if model == nil {
		return apperrors.NewNotFoundError("book not found")
	}

	var refs int64
	err = r.db.WithContext(ctx).Model(&models.LoanDetailModel{}).
		Where("book_id = ?", id).
		Count(&refs).Error
	if err != nil {
		r.logger.Errorw("failed to count loan references", "book_id", id, "error", err)
		return apperrors.NewInternalError("failed to check book references")
	}
	if refs == 0 {
		err = r.db.WithContext(ctx).Model(&models.LoanDetailTempModel{}).
			Where("book_id = ?", id).
			Count(&refs).Error
		if err != nil {
			r.logger.Errorw("failed to count cart references", "book_id", id, "error", err)
			return apperrors.NewInternalError("failed to check book references")
		}
	}
	if refs > 0 {
		return apperrors.NewConflictError("book is referenced by loans and cannot be deleted")
	}

	return r.base.Delete(ctx, model)
}

func (r *BookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.base.Exists(ctx, id)
}
