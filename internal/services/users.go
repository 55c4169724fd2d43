package services

import (
	"errors"
	"strings"

	"wordrush/internal/models"
	"wordrush/pkg/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewUserService(db *gorm.DB, auditService *AuditService) *UserService {
	return &UserService{
		db:           db,
		auditService: auditService,
	}
}

// FindByEmail returns the user with the given email, or nil when no
// account exists for it.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account with a bcrypt-hashed password. The
// email pre-check only produces a friendlier error; the unique index on
// users.email is what actually guarantees uniqueness under concurrent
// registrations, so constraint violations on insert also map to
// ErrEmailTaken.
func (s *UserService) Register(username, email, password, ip string) (*models.User, error) {
	existing, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		APIKey:       utils.GenerateAPIKey(),
	}

	if err := s.db.Create(&newUser).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.auditService.LogAction(&newUser.ID, "REGISTER", newUser.Email, nil, ip)

	return &newUser, nil
}

// Authenticate verifies email and password, returning the same
// ErrInvalidCredentials for an unknown email and a wrong password.
func (s *UserService) Authenticate(email, password, ip string) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, ip)

	return user, nil
}

// FindByAPIKey resolves the account owning an API key.
func (s *UserService) FindByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}
