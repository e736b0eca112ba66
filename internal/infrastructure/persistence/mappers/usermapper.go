package mappers

import (
	"athenaeum/internal/domain/user"
	"athenaeum/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(userModels []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                 u.ID(),
		Username:           u.Username(),
		Email:              u.Email(),
		FirstName:          u.FirstName(),
		LastName:           u.LastName(),
		Phone:              u.Phone(),
		ImageURL:           u.ImageURL(),
		PasswordHash:       u.PasswordHash(),
		Role:               u.Role().String(),
		MustChangePassword: u.MustChangePassword(),
		AdminConfirmed:     u.AdminConfirmed(),
		WasDeleted:         u.WasDeleted(),
		CreatedAt:          u.CreatedAt().UnixMilli(),
		UpdatedAt:          u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.FirstName,
		model.LastName,
		model.Phone,
		model.ImageURL,
		model.PasswordHash,
		user.Role(model.Role),
		model.MustChangePassword,
		model.AdminConfirmed,
		model.WasDeleted,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ToDomainList(userModels []*models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}
	return users, nil
}
