package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/pkg/authorize"
	pasetotoken "github.com/danahmadi/bookora_backend/pkg/paseto"
)

// RequirePermission checks if the authenticated user has the given permission
// in the current business domain (set by BusinessHeader) or sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		if bid, ok := c.Locals(LocalsBusinessID).(string); ok && bid != "" {
			domain = authorize.BusinessDomain(bid)
		} else {
			domain = authorize.DomainSys
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
