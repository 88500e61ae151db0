package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

func (r *Router) registerBusinessRoutes(
	api fiber.Router,
	h *handler.BusinessHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public directory
	businesses := api.Group("/businesses")
	businesses.Get("/", h.List)
	businesses.Get("/slug/:slug", h.GetBySlug)
	businesses.Get("/:id", h.Get)
	businesses.Post("/", authRequired, h.Create)

	// Tenant management, scoped by the X-Business-ID header
	mgmt := api.Group("/business", authRequired, businessHeader)
	mgmt.Patch("/", requirePerm(authorize.ResourceBusiness, authorize.ActionUpdate), h.Update)

	mgmt.Get("/settings", h.GetSettings)
	mgmt.Patch("/settings", requirePerm(authorize.ResourceBusinessSettings, authorize.ActionUpdate), h.UpdateSettings)

	mgmt.Get("/members", h.ListMembers)
	mgmt.Post("/members", requirePerm(authorize.ResourceBusinessMember, authorize.ActionCreate), h.AddMember)
	mgmt.Patch("/members/:id", requirePerm(authorize.ResourceBusinessMember, authorize.ActionUpdate), h.UpdateMember)
	mgmt.Delete("/members/:id", requirePerm(authorize.ResourceBusinessMember, authorize.ActionDelete), h.RemoveMember)

	mgmt.Get("/providers", h.ListProviders)
	mgmt.Post("/providers", requirePerm(authorize.ResourceProviderProfile, authorize.ActionCreate), h.CreateProvider)
	mgmt.Patch("/providers/:id", requirePerm(authorize.ResourceProviderProfile, authorize.ActionUpdate), h.UpdateProvider)

	mgmt.Get("/offerings", h.ListOfferings)
	mgmt.Post("/offerings", requirePerm(authorize.ResourceServiceOffering, authorize.ActionCreate), h.CreateOffering)
	mgmt.Patch("/offerings/:id", requirePerm(authorize.ResourceServiceOffering, authorize.ActionUpdate), h.UpdateOffering)
	mgmt.Delete("/offerings/:id", requirePerm(authorize.ResourceServiceOffering, authorize.ActionDelete), h.DeleteOffering)
}
