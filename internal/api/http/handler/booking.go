package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/service/booking"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrOfferingNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTime):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrOfferingInactive):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrOutsideAvailability):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrConflictingBooking):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrNotScheduled):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/bookings
func (h *BookingHandler) List(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		ProviderID string `query:"provider_id"`
		CustomerID string `query:"customer_id"`
		Status     string `query:"status"`
		FromDate   string `query:"from_date"`
		ToDate     string `query:"to_date"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := booking.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.CustomerID != "" {
		id, err := uuid.Parse(q.CustomerID)
		if err != nil {
			return badRequest(c, "invalid customer_id")
		}
		req.CustomerID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.FromDate != "" {
		req.FromDate = &q.FromDate
	}
	if q.ToDate != "" {
		req.ToDate = &q.ToDate
	}

	bookings, err := h.svc.List(c.Context(), businessID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, bookings)
}

// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.GetByID(c.Context(), businessID, bookingID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, b)
}

// POST /api/v1/bookings
func (h *BookingHandler) Book(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		ProviderID        string  `json:"provider_id"`
		CustomerID        string  `json:"customer_id"`
		ServiceOfferingID *string `json:"service_offering_id"`
		Date              string  `json:"date"`
		StartTime         string  `json:"start_time"`
		EndTime           string  `json:"end_time"`
		Notes             *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}
	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return badRequest(c, "invalid customer_id")
	}

	req := booking.BookRequest{
		ProviderID: providerID,
		CustomerID: customerID,
		Date:       body.Date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Notes:      body.Notes,
	}
	if body.ServiceOfferingID != nil {
		id, err := uuid.Parse(*body.ServiceOfferingID)
		if err != nil {
			return badRequest(c, "invalid service_offering_id")
		}
		req.ServiceOfferingID = &id
	}

	b, err := h.svc.Book(c.Context(), businessID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, b)
}

// POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	var body struct {
		Reason      *string `json:"reason"`
		RequestedBy string  `json:"requested_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	switch body.RequestedBy {
	case "customer", "provider", "business":
	default:
		return badRequest(c, "requested_by must be customer, provider or business")
	}

	if err := h.svc.Cancel(c.Context(), businessID, bookingID, booking.CancelRequest{
		Reason:      body.Reason,
		RequestedBy: body.RequestedBy,
	}); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/bookings/:id/complete
func (h *BookingHandler) Complete(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	if err := h.svc.Complete(c.Context(), businessID, bookingID); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/bookings/:id/no-show
func (h *BookingHandler) MarkNoShow(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	if err := h.svc.MarkNoShow(c.Context(), businessID, bookingID); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}
