package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	h *handler.BookingHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/bookings", authRequired, businessHeader)

	group.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionList), h.List)
	group.Post("/", requirePerm(authorize.ResourceBooking, authorize.ActionCreate), h.Book)
	group.Get("/:id", requirePerm(authorize.ResourceBooking, authorize.ActionRead), h.Get)
	group.Post("/:id/cancel", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.Cancel)
	group.Post("/:id/complete", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.Complete)
	group.Post("/:id/no-show", requirePerm(authorize.ResourceBooking, authorize.ActionUpdate), h.MarkNoShow)
}
