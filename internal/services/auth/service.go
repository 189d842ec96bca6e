// Package auth handles registration, credential verification and token
// issuance. The signing configuration is injected once at construction.
package auth

import (
	"errors"
	"log"

	"bankapi/internal/models"
	"bankapi/internal/repositories"
	"bankapi/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// Service defines the authentication service interface.
type Service interface {
	Register(input *models.CreateUserInput) (*models.User, string, string, error)
	Authenticate(email, password string) (*models.User, string, string, error)
	Refresh(refreshToken string) (string, string, error)
}

type service struct {
	users  repositories.UserRepository
	tokens utils.TokenConfig
}

// NewService creates a new authentication service.
func NewService(users repositories.UserRepository, tokens utils.TokenConfig) Service {
	if users == nil {
		panic("user repository is required")
	}
	return &service{users: users, tokens: tokens}
}

// Register creates a USER-role user with a hashed password and returns a
// fresh token pair. Duplicate live emails are rejected.
func (s *service) Register(input *models.CreateUserInput) (*models.User, string, string, error) {
	if existing, _ := s.users.GetByEmail(input.Email); existing != nil {
		return nil, "", "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", errors.New("failed to hash password")
	}

	user := &models.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Authenticate verifies credentials and returns a token pair. Unknown,
// deleted and wrong-password users all yield the same error.
func (s *service) Authenticate(email, password string) (*models.User, string, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("authentication failed: user not found for %s", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("authentication failed: wrong password for user %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Refresh re-issues a token pair from a valid refresh token. The backing
// user must still exist and be live.
func (s *service) Refresh(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(s.tokens, refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	return s.issueTokens(user)
}

func (s *service) issueTokens(user *models.User) (string, string, error) {
	access, refresh, err := utils.GenerateTokens(s.tokens, &models.UserClaims{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: models.GetDefaultPermissions(user.Role),
	})
	if err != nil {
		log.Println("error generating tokens:", err)
		return "", "", errors.New("error generating tokens")
	}
	return access, refresh, nil
}
