package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/salasilah/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

type AuthUserRepository interface {
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates credentials, hashes the password and stores the user.
// A duplicate username fails with ErrUsernameTaken; the unique index backs
// the check-then-insert.
func (service *AuthService) Register(username string, password string) (models.User, error) {
	normalized := NormalizeUsername(username)
	if err := ValidateRegistrationInput(normalized, password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedUsername(normalized)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     normalized,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

// Authenticate resolves a user by username and checks the password. Unknown
// usernames and hash mismatches are indistinguishable to the caller.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedUsername(NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !service.VerifyPassword(user, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) VerifyPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
