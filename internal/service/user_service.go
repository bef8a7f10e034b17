package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobsite/internal/errors"
	"jobsite/internal/model"
	"jobsite/internal/normalizer"
	"jobsite/internal/repository"
)

const bcryptCost = 10

// UserService handles account operations.
type UserService interface {
	Signup(ctx context.Context, firstName, lastName, email, phone, password string) error
	Login(ctx context.Context, email, password string) (*model.PublicUser, error)
	Profile(ctx context.Context, email string) (*model.PublicUser, error)
	SetProfilePic(ctx context.Context, email, path string) (string, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Signup creates an account with a hashed password. One account per email is
// enforced by the storage-level unique index, so concurrent signups cannot
// both succeed.
func (s *userService) Signup(ctx context.Context, firstName, lastName, email, phone, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        normalizer.OptionalText(phone),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return errors.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies credentials and returns the account's public fields.
func (s *userService) Login(ctx context.Context, email, password string) (*model.PublicUser, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errors.ErrInvalidPassword
	}
	return user.Public(), nil
}

// Profile returns the account's public fields.
func (s *userService) Profile(ctx context.Context, email string) (*model.PublicUser, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// SetProfilePic overwrites the stored picture path and returns the new value.
func (s *userService) SetProfilePic(ctx context.Context, email, path string) (string, error) {
	if err := s.users.UpdateProfilePic(ctx, email, path); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrUserNotFound
		}
		return "", fmt.Errorf("update profile picture: %w", err)
	}
	return path, nil
}

func (s *userService) findByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
