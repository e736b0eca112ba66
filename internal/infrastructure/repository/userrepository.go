package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"athenaeum/internal/domain/user"
	"athenaeum/internal/infrastructure/persistence/mappers"
	"athenaeum/internal/infrastructure/persistence/models"
	sharedb "athenaeum/internal/shared/db"
	apperrors "athenaeum/internal/shared/errors"
	"athenaeum/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, mapper mappers.UserMapper, log logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mapper,
		logger: log.Named("user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username or email already registered")
		}
		return apperrors.NewInternalError("failed to create user")
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Scopes(sharedb.NotDeleted()).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by id", "id", id, "error", err)
		return nil, apperrors.NewInternalError("failed to get user")
	}
	return r.mapper.ToDomain(&model)
}

// GetByUsername resolves a caller-supplied username. Unknown or deleted
// users come back as (nil, nil); the caller picks between silent no-op
// and not-found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Scopes(sharedb.NotDeleted()).
		Where("username = ?", username).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, apperrors.NewInternalError("failed to get user")
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Scopes(sharedb.NotDeleted()).
		Where("email = ?", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, apperrors.NewInternalError("failed to get user")
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) HasRole(ctx context.Context, u *user.User, role user.Role) (bool, error) {
	if u == nil {
		return false, nil
	}
	return u.Role() == role, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", u.ID(), "error", result.Error)
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("username or email already registered")
		}
		return apperrors.NewInternalError("failed to update user")
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Scopes(sharedb.NotDeleted()).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check username existence", "username", username, "error", err)
		return false, apperrors.NewInternalError("failed to check username existence")
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Scopes(sharedb.NotDeleted()).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check email existence", "email", email, "error", err)
		return false, apperrors.NewInternalError("failed to check email existence")
	}
	return count > 0, nil
}
