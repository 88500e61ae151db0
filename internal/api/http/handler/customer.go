package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/api/http/middleware"
	"github.com/danahmadi/bookora_backend/internal/service/customer"
)

type CustomerHandler struct {
	svc customer.Service
}

func NewCustomerHandler(svc customer.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// businessIDFromLocals reads the tenant set by the BusinessHeader middleware.
func businessIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(middleware.LocalsBusinessID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

// memberIDFromLocals reads the caller's membership row ID.
func memberIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(middleware.LocalsMemberID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

func mapCustomerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, customer.ErrFirstNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, customer.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, customer.ErrPhoneAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/customers
func (h *CustomerHandler) Create(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		UserID    *string `json:"user_id"`
		FirstName string  `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := customer.CreateCustomerRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		Notes:     body.Notes,
	}
	if body.UserID != nil {
		id, err := uuid.Parse(*body.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		req.UserID = &id
	}

	cust, err := h.svc.Create(c.Context(), businessID, req)
	if err != nil {
		return mapCustomerError(c, err)
	}

	return created(c, cust)
}

// GET /api/v1/customers
func (h *CustomerHandler) List(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), businessID, customer.ListCustomersRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
	})
	if err != nil {
		return mapCustomerError(c, err)
	}

	return ok(c, result)
}

// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	cust, err := h.svc.GetByID(c.Context(), businessID, customerID)
	if err != nil {
		return mapCustomerError(c, err)
	}

	return ok(c, cust)
}

// PATCH /api/v1/customers/:id
func (h *CustomerHandler) Update(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email"`
		Notes     *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cust, err := h.svc.Update(c.Context(), businessID, customerID, customer.UpdateCustomerRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     body.Email,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapCustomerError(c, err)
	}

	return ok(c, cust)
}

// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	if err := h.svc.Delete(c.Context(), businessID, customerID); err != nil {
		return mapCustomerError(c, err)
	}

	return noContent(c)
}
