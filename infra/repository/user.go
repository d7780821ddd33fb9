package repository

import (
	"context"
	"errors"

	"github.com/fintrackd/fintrack/pkg/domain/user"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository bound to the given session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var m User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}
	return user.NewUserFromData(m.ID, m.Email, m.Password, m.Names, m.CreatedAt, m.UpdatedAt), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var m User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}
	return user.NewUserFromData(m.ID, m.Email, m.Password, m.Names, m.CreatedAt, m.UpdatedAt), nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(&User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Names:     u.Names,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}).Error
}
