package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/models"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// RegisterRequest is the payload for creating an account. Profile fields
// are optional and stored as null when absent.
type RegisterRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required"`
	Role        models.Role `json:"role" validate:"required,oneof=student parent cook admin"`
	Surname     *string     `json:"surname"`
	Name        *string     `json:"name"`
	Patronymic  *string     `json:"patronymic"`
	Birthdate   *string     `json:"birthdate"`
	ClassNumber *int64      `json:"class_number"`
	ClassLetter *string     `json:"class_letter"`
	ParentID    *int64      `json:"parent_id"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string      `json:"email" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required"`
}

// LoginResponse carries the account identity the client uses on every
// later call. There is no token behind it.
type LoginResponse struct {
	ID   int64       `json:"id"`
	Role models.Role `json:"role"`
}

// AuthService handles registration and login. Passwords are stored and
// compared in plain text, a known gap inherited from the system this
// service replaces.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService creates an instance of AuthService.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Register creates an account, rejecting emails that already exist.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Обязательны: email, password и role")
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return appErrors.ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email uniqueness")
	}

	user := &models.User{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Surname:     req.Surname,
		Name:        req.Name,
		Patronymic:  req.Patronymic,
		Birthdate:   req.Birthdate,
		ClassNumber: req.ClassNumber,
		ClassLetter: req.ClassLetter,
		ParentID:    req.ParentID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user registered", zap.Int64("id", user.ID), zap.String("role", string(user.Role)))
	return nil
}

// Login succeeds only when email, password and role all match one account.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	user, err := s.repo.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up credentials")
	}

	if user.Role != req.Role {
		return nil, appErrors.ErrInvalidCredentials
	}

	return &LoginResponse{ID: user.ID, Role: user.Role}, nil
}
