package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, bcrypt.MinCost)

		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, nil).Once()
		userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

		user, err := svc.Signup(ctx, &SignupInput{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		// Stored password is a hash, never the plaintext
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, bcrypt.MinCost)

		userRepo.On("GetByEmail", ctx, "taken@example.com").
			Return(&entity.User{Email: "taken@example.com"}, nil).Once()

		_, err := svc.Signup(ctx, &SignupInput{
			Name:     "Someone",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashed),
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, bcrypt.MinCost)

		userRepo.On("GetByEmail", ctx, testUser.Email).Return(testUser, nil).Once()

		user, err := svc.Login(ctx, &LoginInput{
			Email:    testUser.Email,
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, bcrypt.MinCost)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		_, err := svc.Login(ctx, &LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.Equal(t, apperror.ErrInvalidCredentials, err)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, bcrypt.MinCost)

		userRepo.On("GetByEmail", ctx, testUser.Email).Return(testUser, nil).Once()

		_, err := svc.Login(ctx, &LoginInput{
			Email:    testUser.Email,
			Password: "wrongpass",
		})

		// Same generic error as an unknown email
		assert.Equal(t, apperror.ErrInvalidCredentials, err)
	})
}
