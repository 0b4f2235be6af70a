package service

import (
	"errors"
	"fmt"
	"time"

	"schoolbackend/internal/models"
	"schoolbackend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterInput carries a registration request into the service layer. The
// plaintext password is hashed here and never stored or logged.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Username    string
	Password    string
	PhoneNumber string
	LocationID  string
	TypeID      string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *models.AuthUser
}

type AuthService interface {
	Login(username, password string) (*LoginResult, error)
	Register(input RegisterInput) (*models.AuthUser, error)
}

type authService struct {
	users    repository.AuthUserRepository
	students repository.StudentRepository
	tokens   *TokenService
	logger   *zap.Logger
}

func NewAuthService(users repository.AuthUserRepository, students repository.StudentRepository, tokens *TokenService, logger *zap.Logger) AuthService {
	return &authService{
		users:    users,
		students: students,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the credentials against the stored record and on success
// issues a token. "No such user" and "wrong password" are distinguished only
// in server logs; callers surface the same generic failure for both.
func (s *authService) Login(username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		s.logger.Error("Failed to look up user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		s.logger.Warn("Login attempt for unknown user", zap.String("username", username))
		return nil, ErrUserNotFound
	}

	if !CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Login attempt with wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.String("username", username))
	return &LoginResult{Token: token, User: user}, nil
}

// Register hashes the password, derives the role from the submitted type
// code and persists the credential. Student-typed registrations also create
// the matching student record.
func (s *authService) Register(input RegisterInput) (*models.AuthUser, error) {
	existing, err := s.users.GetByUsername(input.Username)
	if err != nil {
		s.logger.Error("Failed to check existing user", zap.String("username", input.Username), zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	role := s.roleFromTypeID(input.TypeID)

	user := &models.AuthUser{
		Username:     input.Username,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		PhoneNumber:  input.PhoneNumber,
		LocationID:   input.LocationID,
	}

	if err := s.users.Create(user); err != nil {
		s.logger.Error("Failed to create user", zap.String("username", input.Username), zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleStudent {
		student := &models.Student{
			ID:             uuid.NewString(),
			FirstName:      input.FirstName,
			LastName:       input.LastName,
			Email:          input.Username,
			PhoneNumber:    input.PhoneNumber,
			EnrollmentDate: time.Now().Format(time.RFC3339),
		}
		if err := s.students.Create(student); err != nil {
			// The credential already exists; the student record can be
			// backfilled, so registration itself still succeeds.
			s.logger.Error("Failed to create student record for registered user",
				zap.String("username", input.Username), zap.Error(err))
		}
	}

	s.logger.Info("User registered successfully",
		zap.String("username", input.Username), zap.String("role", string(role)))
	return user, nil
}

// roleFromTypeID maps the submitted type code onto the closed role set.
// Unrecognized codes fall back to student, matching the legacy contract, but
// the fallback is logged so it stays observable.
func (s *authService) roleFromTypeID(typeID string) models.Role {
	switch typeID {
	case "1":
		return models.RoleAdmin
	case "2":
		return models.RoleTeacher
	case "3":
		return models.RoleStudent
	default:
		s.logger.Warn("Unrecognized user type code, defaulting to student", zap.String("typeId", typeID))
		return models.RoleStudent
	}
}
