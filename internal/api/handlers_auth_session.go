package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/services"
)

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	if _, err := handler.authService.Register(input.Username, input.Password); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": "registered"})
}

// ObtainToken exchanges credentials for an access/refresh pair. Failures are
// counted per client IP.
func (handler *Handler) ObtainToken(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := credentialsInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Username, input.Password)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrPasswordChangeRequired):
		handler.loginLimiter.reset(limiterKey)
		return apiError(c, fiber.StatusForbidden, "password change required")
	case err != nil:
		return handler.respondServiceError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	pair, err := handler.buildTokenPair(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, pair.Access)
	return c.JSON(pair)
}

func (handler *Handler) RefreshToken(c *fiber.Ctx) error {
	input := refreshInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	claims, err := handler.parseToken(input.Refresh, tokenTypeRefresh)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.MustChangePassword {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}

	access, err := handler.buildToken(&user, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, access)
	return c.JSON(fiber.Map{"access": access})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
