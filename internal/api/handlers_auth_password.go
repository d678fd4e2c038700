package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/models"
	"github.com/terraincognita07/steadfast/internal/services"
)

// ChangePassword works with an access token, or with a username for accounts
// that are locked behind a forced password change and cannot obtain one.
func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	input := changePasswordInput{}
	if err := decodeJSONBody(c, &input); err != nil {
		return invalidPayload(c)
	}

	handler.ensureDependencies()
	user, err := handler.authenticateRequest(c)
	if err != nil {
		account, respond := handler.passwordChangeAccount(c, input)
		if account == nil {
			return respond
		}
		user = account
	}

	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return handler.respondServiceError(c, err)
	}
	handler.loginLimiter.reset(requestLimiterKey(c))
	return c.JSON(fiber.Map{"detail": "password changed"})
}

// passwordChangeAccount resolves the account named in the body. When it
// returns no user the response has already been written and the error is the
// result of writing it. Wrong passwords count against the login limiter.
func (handler *Handler) passwordChangeAccount(c *fiber.Ctx, input changePasswordInput) (*models.User, error) {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return nil, apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}
	if input.Username == "" {
		return nil, apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.Authenticate(input.Username, input.CurrentPassword)
	switch {
	case err == nil, errors.Is(err, services.ErrPasswordChangeRequired):
		return &user, nil
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return nil, apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	default:
		return nil, handler.respondServiceError(c, err)
	}
}
