package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/service/charge"
)

type ChargeHandler struct {
	svc charge.Service
}

func NewChargeHandler(svc charge.Service) *ChargeHandler {
	return &ChargeHandler{svc: svc}
}

func mapChargeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, charge.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, charge.ErrEmptyBatch):
		return badRequest(c, err.Error())
	case errors.Is(err, charge.ErrBatchTooLarge):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/charges/batch
func (h *ChargeHandler) CreateBatch(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		BookingIDs []string `json:"booking_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(body.BookingIDs))
	for _, s := range body.BookingIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid booking id: "+s)
		}
		ids = append(ids, id)
	}

	items, err := h.svc.CreateBatch(c.Context(), businessID, ids)
	if err != nil {
		return mapChargeError(c, err)
	}

	return ok(c, fiber.Map{"items": items})
}

// GET /api/v1/charges
func (h *ChargeHandler) List(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var status *string
	if q.Status != "" {
		status = &q.Status
	}

	charges, err := h.svc.ListByBusiness(c.Context(), businessID, status, q.Page, q.PerPage)
	if err != nil {
		return mapChargeError(c, err)
	}

	return ok(c, charges)
}

// GET /api/v1/charges/:id
func (h *ChargeHandler) Get(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	chargeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid charge id")
	}

	ch, err := h.svc.Get(c.Context(), businessID, chargeID)
	if err != nil {
		return mapChargeError(c, err)
	}

	return ok(c, ch)
}

// POST /webhooks/paylink
//
// No session auth on this path; the gateway signature is the authentication.
// Unknown references and non-settling events answer 200 so the gateway stops
// retrying; a bad signature answers 400.
func (h *ChargeHandler) PaylinkWebhook(c fiber.Ctx) error {
	sig := c.Get("Stripe-Signature")
	if sig == "" {
		return badRequest(c, "missing Stripe-Signature header")
	}

	ch, err := h.svc.HandleWebhook(c.Context(), c.Body(), sig)
	if err != nil {
		switch {
		case errors.Is(err, charge.ErrNotFound), errors.Is(err, charge.ErrEventIgnored):
			return ok(c, fiber.Map{"status": "ignored"})
		case errors.Is(err, charge.ErrWebhookRejected):
			return badRequest(c, "invalid webhook signature")
		default:
			return internalError(c)
		}
	}

	return ok(c, fiber.Map{"status": "processed", "charge_id": ch.ID})
}
