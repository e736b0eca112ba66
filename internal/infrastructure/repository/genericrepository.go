package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"athenaeum/internal/infrastructure/persistence/models"
	sharedb "athenaeum/internal/shared/db"
	apperrors "athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

// GenericRepository provides the base persistence operations shared by
// every soft-deletable record type. Reads exclude records whose
// was_deleted flag is set; Delete flips the flag instead of removing
// the row, so historical references stay resolvable.
//
// PT is the pointer type of the record (e.g. *models.BookModel); the
// two-parameter form lets GetByID allocate a fresh record internally.
type GenericRepository[T any, PT interface {
	*T
	models.SoftDeletable
}] struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewGenericRepository[T any, PT interface {
	*T
	models.SoftDeletable
}](db *gorm.DB, log logger.Interface) *GenericRepository[T, PT] {
	return &GenericRepository[T, PT]{
		db:     db,
		logger: log.Named("generic_repository"),
	}
}

func (r *GenericRepository[T, PT]) Create(ctx context.Context, record PT) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.logger.Errorw("failed to create record", "error", err)
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("record already exists")
		}
		return apperrors.NewInternalError("failed to create record")
	}
	return nil
}

func (r *GenericRepository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	var records []PT
	err := r.db.WithContext(ctx).
		Scopes(sharedb.NotDeleted()).
		Find(&records).Error
	if err != nil {
		r.logger.Errorw("failed to list records", "error", err)
		return nil, apperrors.NewInternalError("failed to list records")
	}
	return records, nil
}

// GetByID returns (nil, nil) when no live record matches; callers map
// that to their own not-found semantics.
func (r *GenericRepository[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	var record T
	err := r.db.WithContext(ctx).
		Scopes(sharedb.NotDeleted()).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get record", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get record")
	}
	return PT(&record), nil
}

func (r *GenericRepository[T, PT]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	var record T
	err := r.db.WithContext(ctx).
		Model(PT(&record)).
		Scopes(sharedb.NotDeleted()).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check record existence", "id", id, "error", err)
		return false, apperrors.NewInternalError("failed to check record existence")
	}
	return count > 0, nil
}

func (r *GenericRepository[T, PT]) Update(ctx context.Context, record PT) error {
	result := r.db.WithContext(ctx).Save(record)
	if result.Error != nil {
		r.logger.Errorw("failed to update record", "id", record.GetID(), "error", result.Error)
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("record conflicts with an existing one")
		}
		return apperrors.NewInternalError("failed to update record")
	}
	return nil
}

// Delete marks the record deleted. The row remains in place so foreign
// keys from loan history keep resolving.
func (r *GenericRepository[T, PT]) Delete(ctx context.Context, record PT) error {
	record.SetDeleted(true)
	return r.Update(ctx, record)
}
