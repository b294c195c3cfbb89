package middleware

import (
	"strings"

	"snakegame/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session_token"

// wantsJSON decides the rejection strategy for unauthenticated requests:
// API-shaped requests (path under /api/ or a JSON body) get a 401 JSON
// error, page requests get redirected to the login page.
func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

// OptionalAuth resolves the session cookie when present and stores the user
// id and username in the request context. It never rejects; handlers behind
// it decide what an anonymous request means (e.g. guest-mode score submits).
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" {
			if userID, username, err := authService.ValidateToken(token); err == nil {
				c.Locals("user_id", userID)
				c.Locals("username", username)
			}
		}
		return c.Next()
	}
}

// AuthRequired guards protected routes. A valid session continues with the
// user id and username in the request context; an anonymous request is
// rejected per wantsJSON.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token != "" {
			if userID, username, err := authService.ValidateToken(token); err == nil {
				c.Locals("user_id", userID)
				c.Locals("username", username)
				return c.Next()
			}
		}

		if wantsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "login required",
			})
		}
		return c.Redirect("/login", fiber.StatusFound)
	}
}

// UserID extracts the authenticated user id stored by OptionalAuth or
// AuthRequired. ok is false for anonymous requests.
func UserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("user_id").(uint)
	return userID, ok
}
