package services

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/terraincognita07/steadfast/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordChangeRequired = errors.New("password change required")
	ErrUserNotFound           = errors.New("user not found")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AuthService struct {
	users      AuthUserRepository
	bcryptCost int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost lowers the hashing cost, mainly for tests.
func (service *AuthService) WithBcryptCost(cost int) *AuthService {
	service.bcryptCost = cost
	return service
}

// Register creates an account. Every field problem is reported at once in a
// *ValidationError.
func (service *AuthService) Register(usernameRaw string, password string) (models.User, error) {
	return service.CreateUser(usernameRaw, password, false)
}

func (service *AuthService) CreateUser(usernameRaw string, password string, mustChangePassword bool) (models.User, error) {
	username := NormalizeUsername(usernameRaw)
	validation := newValidationError()

	if problem := usernameProblem(username); problem != "" {
		validation.Add("username", problem)
	} else {
		taken, err := service.users.ExistsByUsername(username)
		if err != nil {
			return models.User{}, fmt.Errorf("check username: %w", err)
		}
		if taken {
			validation.Add("username", msgUsernameTaken)
		}
	}
	if problem := passwordProblem(password); problem != "" {
		validation.Add("password", problem)
	}
	if err := validation.Err(); err != nil {
		return models.User{}, err
	}

	hash, err := service.hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Username:           username,
		PasswordHash:       hash,
		MustChangePassword: mustChangePassword,
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, fieldError("username", msgUsernameTaken)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials. A user flagged for a password change is
// returned together with ErrPasswordChangeRequired.
func (service *AuthService) Authenticate(usernameRaw string, password string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !passwordMatches(user.PasswordHash, password) {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if user.MustChangePassword {
		return user, ErrPasswordChangeRequired
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *AuthService) FindByUsername(usernameRaw string) (models.User, error) {
	user, err := service.users.FindByUsername(NormalizeUsername(usernameRaw))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ChangePassword verifies the current password, stores the new one and clears
// the forced change flag.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}

	validation := newValidationError()
	switch {
	case currentPassword == "":
		validation.Add("current_password", msgRequired)
	case !passwordMatches(user.PasswordHash, currentPassword):
		validation.Add("current_password", "Current password is incorrect.")
	}
	if problem := passwordProblem(newPassword); problem != "" {
		validation.Add("new_password", problem)
	} else if newPassword == currentPassword {
		validation.Add("new_password", "New password must differ from the current one.")
	}
	if err := validation.Err(); err != nil {
		return err
	}

	return service.SetPassword(user.ID, newPassword, false)
}

// SetPassword stores password without checking the previous one. It is used
// by the administrative reset command.
func (service *AuthService) SetPassword(userID uint, password string, mustChangePassword bool) error {
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}
	hash, err := service.hashPassword(password)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePassword(userID, hash, mustChangePassword); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (service *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), service.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// bcrypt only reads the first 72 bytes and rejects anything longer, so long
// passwords are reduced to a fixed-size digest first. Shorter ones pass
// through unchanged and keep verifying against existing hashes.
const bcryptMaxInput = 72

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	digest := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(digest[:]))
}

func passwordMatches(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}
