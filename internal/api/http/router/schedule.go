package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	h *handler.ScheduleHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/schedule", authRequired, businessHeader)

	group.Get("/rules", h.ListRules)
	group.Post("/rules", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionCreate), h.CreateRule)
	group.Patch("/rules/:id", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionUpdate), h.UpdateRule)
	group.Delete("/rules/:id", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionDelete), h.DeleteRule)

	group.Get("/resolve", h.ResolveDay)
	group.Get("/range", h.ResolveRange)
	group.Patch("/toggle", requirePerm(authorize.ResourceProviderProfile, authorize.ActionUpdate), h.Toggle)

	// Public: what an accepting provider offers on a given day.
	api.Get("/providers/:pid/availability", h.PublicDay)
}
