package service

import (
	"context"

	"github.com/maligai/backoffice-api/internal/domain/entity"
	"github.com/maligai/backoffice-api/internal/domain/repository"
	"github.com/maligai/backoffice-api/pkg/apperror"
	"github.com/maligai/backoffice-api/pkg/utils"
)

// AuthService handles signup and login. No session or token is issued;
// login is a pure credential check.
type AuthService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// SignupInput represents the signup input
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup creates a new user account
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("user lookup failed", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already exists")
	}

	hashed, err := utils.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.NewStoreUnavailableError("user create failed", err)
	}
	return user, nil
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials. A missing user and a wrong password yield the
// same generic error, so the response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("user lookup failed", err)
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}
