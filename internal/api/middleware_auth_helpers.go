package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/steadfast/internal/models"
)

var (
	errMissingToken   = errors.New("missing token")
	errInvalidToken   = errors.New("invalid token")
	errTokenExpired   = errors.New("token expired")
	errWrongTokenType = errors.New("wrong token type")
)

// requestToken prefers the Authorization header over the auth cookie.
func requestToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) > len(bearerAuthScheme) && strings.EqualFold(header[:len(bearerAuthScheme)], bearerAuthScheme) {
		return strings.TrimSpace(header[len(bearerAuthScheme):])
	}
	return strings.TrimSpace(c.Cookies(authCookieName))
}

func (handler *Handler) parseToken(rawToken string, expectedType string) (*authClaims, error) {
	if rawToken == "" {
		return nil, errMissingToken
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errTokenExpired
		}
		return nil, errInvalidToken
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errTokenExpired
	}
	if claims.Type != expectedType {
		return nil, errWrongTokenType
	}
	if claims.UserID == 0 {
		return nil, errInvalidToken
	}
	return claims, nil
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	claims, err := handler.parseToken(requestToken(c), tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
