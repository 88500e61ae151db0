package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(api fiber.Router, h *handler.NotificationHandler, authRequired fiber.Handler) {
	group := api.Group("/notifications", authRequired)
	group.Get("/", h.List)
	group.Get("/unread-count", h.UnreadCount)
	group.Post("/read-all", h.MarkAllRead)
	group.Post("/:id/read", h.MarkRead)
}
