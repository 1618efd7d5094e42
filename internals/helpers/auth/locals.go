package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocClaims    = "jwt_claims"
	LocUserID    = "user_id"
	LocRole      = "role"
	LocStudentID = "student_id"
)

func UserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func RoleFromLocals(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRole).(string)
	return strings.TrimSpace(s)
}

// StudentIDFromLocals returns the student entity bound to the token, if any.
func StudentIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(LocStudentID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ParseUUIDParam parses a :param path segment as a UUID or returns a 400.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
