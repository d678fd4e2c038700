package api

import (
	"testing"
	"time"

	"github.com/terraincognita07/steadfast/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, database *gorm.DB, username string, password string, mustChangePassword bool) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:           username,
		PasswordHash:       string(passwordHash),
		MustChangePassword: mustChangePassword,
		CreatedAt:          time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
