package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

func (r *Router) registerChargeRoutes(
	app *fiber.App,
	api fiber.Router,
	h *handler.ChargeHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/charges", authRequired, businessHeader)

	group.Get("/", requirePerm(authorize.ResourceCharge, authorize.ActionList), h.List)
	group.Post("/batch", requirePerm(authorize.ResourceCharge, authorize.ActionCreate), h.CreateBatch)
	group.Get("/:id", requirePerm(authorize.ResourceCharge, authorize.ActionRead), h.Get)

	// Gateway callback; the delivery signature is the authentication.
	app.Post("/webhooks/paylink", h.PaylinkWebhook)
}
