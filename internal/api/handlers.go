package api

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		logger:       log.Default(),
		now:          time.Now,
		loginLimiter: newAttemptLimiter(),
	}
	handler.ensureDependencies()
	return handler, nil
}

// WithLogger replaces the logger used for unexpected errors.
func (handler *Handler) WithLogger(logger *log.Logger) *Handler {
	if logger != nil {
		handler.logger = logger
	}
	return handler
}
