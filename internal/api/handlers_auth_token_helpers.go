package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/steadfast/internal/models"
)

func (handler *Handler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    accessToken,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(accessTokenTTL),
	})
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := authClaims{
		UserID: user.ID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) buildTokenPair(user *models.User) (tokenPairResponse, error) {
	access, err := handler.buildToken(user, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return tokenPairResponse{}, err
	}
	refresh, err := handler.buildToken(user, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return tokenPairResponse{}, err
	}
	return tokenPairResponse{Access: access, Refresh: refresh}, nil
}
