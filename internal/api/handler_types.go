package api

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/steadfast/internal/db"
	"github.com/terraincognita07/steadfast/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *log.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories   *db.Repositories
	authService    *services.AuthService
	habitService   *services.HabitService
	triggerService *services.TriggerService
	logService     *services.DailyLogService
	statsService   *services.StatsService
	exportService  *services.ExportService
}

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshInput struct {
	Refresh string `json:"refresh"`
}

type changePasswordInput struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
