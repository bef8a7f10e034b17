package repository

import (
	"context"

	"gorm.io/gorm"

	"jobsite/internal/model"
)

// UserRepository defines account persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfilePic(ctx context.Context, email, path string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts one account. A duplicate email surfaces as
// gorm.ErrDuplicatedKey via the unique index on users.email.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByEmail finds an account by its exact email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfilePic overwrites the stored picture path, reporting
// gorm.ErrRecordNotFound when no account matched.
func (r *userRepository) UpdateProfilePic(ctx context.Context, email, path string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("profile_pic", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
