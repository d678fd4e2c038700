package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/steadfast/internal/models"
)

const (
	authCookieName   = "steadfast_auth"
	contextUserKey   = "current_user"
	requestIDKey     = "requestid"
	timezoneHeader   = "X-Timezone"
	bearerAuthScheme = "Bearer "
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}

// callerID is the ID of the authenticated user. Routes behind AuthRequired
// always have one.
func callerID(c *fiber.Ctx) uint {
	user, ok := currentUser(c)
	if !ok {
		return 0
	}
	return user.ID
}

func requestID(c *fiber.Ctx) string {
	value, _ := c.Locals(requestIDKey).(string)
	return value
}
