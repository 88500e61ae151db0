package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entbusiness "github.com/danahmadi/bookora_backend/internal/repo/business"
	entmember "github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	pasetotoken "github.com/danahmadi/bookora_backend/pkg/paseto"
)

const (
	LocalsBusinessID = "business_id"
	LocalsMemberRole = "member_role"
	LocalsMemberID   = "member_id"
)

// BusinessHeader reads the tenant from the X-Business-ID header, validates the
// business is active and the authenticated user is an active member, and stores
// the tenant context in Locals for downstream handlers and RBAC.
func BusinessHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Business-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Business-ID header is required")
		}

		businessID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Business-ID value")
		}

		exists, err := db.Business.Query().
			Where(entbusiness.ID(businessID), entbusiness.IsActive(true), entbusiness.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		m, err := db.BusinessMember.Query().
			Where(
				entmember.BusinessID(businessID),
				entmember.UserID(claims.UserID),
				entmember.IsActive(true),
			).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrForbidden
			}
			return err
		}

		c.Locals(LocalsBusinessID, businessID.String())
		c.Locals(LocalsMemberRole, string(m.Role))
		c.Locals(LocalsMemberID, m.ID.String())

		return c.Next()
	}
}

// BusinessIDFromFiber returns the tenant set by BusinessHeader.
func BusinessIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocalsBusinessID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
