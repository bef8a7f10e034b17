package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobsite/internal/errors"
	"jobsite/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfilePic(ctx context.Context, email, path string) error {
	args := m.Called(ctx, email, path)
	return args.Error(0)
}

func TestUserService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	var created *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*model.User) }).
		Return(nil)

	svc := NewUserService(mockRepo)
	err := svc.Signup(context.Background(), "Ada", "Lovelace", "ada@example.com", "", "s3cret99")

	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.Nil(t, created.Phone)
	// Stored credential must be a verifiable hash, never the plaintext.
	assert.NotEqual(t, "s3cret99", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret99")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_SignupDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

	svc := NewUserService(mockRepo)
	err := svc.Signup(context.Background(), "Ada", "Lovelace", "ada@example.com", "555-0100", "s3cret99")

	assert.ErrorIs(t, err, errors.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret99"), bcryptCost)
	stored := &model.User{
		ID:           1,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "ada@example.com",
			password: "s3cret99",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "ada@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
			},
			wantErr: errors.ErrInvalidPassword,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "anything",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ada", user.FirstName)
				assert.Equal(t, "ada@example.com", user.Email)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_SetProfilePic(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateProfilePic", mock.Anything, "ada@example.com", "/uploads/p.png").Return(nil)
	mockRepo.On("UpdateProfilePic", mock.Anything, "ghost@example.com", "/uploads/p.png").Return(gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)

	path, err := svc.SetProfilePic(context.Background(), "ada@example.com", "/uploads/p.png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/p.png", path)

	_, err = svc.SetProfilePic(context.Background(), "ghost@example.com", "/uploads/p.png")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
