package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

func (r *Router) registerCustomerRoutes(
	api fiber.Router,
	h *handler.CustomerHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/customers", authRequired, businessHeader)

	group.Get("/", requirePerm(authorize.ResourceCustomer, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceCustomer, authorize.ActionCreate), h.Create)
	group.Get("/:id", requirePerm(authorize.ResourceCustomer, authorize.ActionRead), h.Get)
	group.Patch("/:id", requirePerm(authorize.ResourceCustomer, authorize.ActionUpdate), h.Update)
	group.Delete("/:id", requirePerm(authorize.ResourceCustomer, authorize.ActionDelete), h.Delete)
}
