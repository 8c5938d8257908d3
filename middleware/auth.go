package middleware

import (
	"strings"

	"learnify/models"
	"learnify/session"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves the Authorization bearer token against the session
// store and puts the user snapshot in the request locals. Missing or unknown
// tokens get a generic 401.
func RequireAuth(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		user, ok := store.Resolve(c.UserContext(), token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		c.Locals("user", user)
		c.Locals("token", token)

		return c.Next()
	}
}

// RequireRoles ensures the authenticated user has one of the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}
}

// CurrentUser returns the session snapshot stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals("user").(models.User)
	return user
}

// CurrentToken returns the bearer token stored by RequireAuth.
func CurrentToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
