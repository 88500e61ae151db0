package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/service/business"
	pasetotoken "github.com/danahmadi/bookora_backend/pkg/paseto"
)

type BusinessHandler struct {
	svc business.Service
}

func NewBusinessHandler(svc business.Service) *BusinessHandler {
	return &BusinessHandler{svc: svc}
}

func mapBusinessError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, business.ErrBusinessNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, business.ErrSlugAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, business.ErrInvalidSlug):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrMemberNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, business.ErrAlreadyMember):
		return conflict(c, err.Error())
	case errors.Is(err, business.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrCannotRemoveOwner):
		return forbidden(c)
	case errors.Is(err, business.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, business.ErrProfileExists):
		return conflict(c, err.Error())
	case errors.Is(err, business.ErrNotProvider):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrInvalidDisplayName):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrOfferingNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, business.ErrInvalidOfferingName):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrInvalidDuration):
		return badRequest(c, err.Error())
	case errors.Is(err, business.ErrInvalidPrice):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Business CRUD
// ---------------------------------------------------------------------------

// POST /api/v1/businesses
func (h *BusinessHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		City        string `json:"city"`
		Timezone    string `json:"timezone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	b, err := h.svc.CreateBusiness(c.Context(), claims.UserID, business.CreateBusinessRequest{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
		Timezone:    body.Timezone,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return created(c, b)
}

// GET /api/v1/businesses
func (h *BusinessHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int   `query:"page"`
		PerPage int   `query:"per_page"`
		Active  *bool `query:"active"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.ListBusinesses(c.Context(), business.ListBusinessesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Active:  q.Active,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, result)
}

// GET /api/v1/businesses/:id
func (h *BusinessHandler) Get(c fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid business id")
	}

	b, err := h.svc.GetBusiness(c.Context(), businessID)
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, b)
}

// GET /api/v1/businesses/slug/:slug
func (h *BusinessHandler) GetBySlug(c fiber.Ctx) error {
	b, err := h.svc.GetBusinessBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapBusinessError(c, err)
	}
	return ok(c, b)
}

// PATCH /api/v1/business  (tenant from X-Business-ID)
func (h *BusinessHandler) Update(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Timezone    *string `json:"timezone"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	b, err := h.svc.UpdateBusiness(c.Context(), businessID, business.UpdateBusinessRequest{
		Name:        body.Name,
		Description: body.Description,
		Phone:       body.Phone,
		Address:     body.Address,
		City:        body.City,
		Timezone:    body.Timezone,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, b)
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// GET /api/v1/business/settings
func (h *BusinessHandler) GetSettings(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	st, err := h.svc.GetSettings(c.Context(), businessID)
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, st)
}

// PATCH /api/v1/business/settings
func (h *BusinessHandler) UpdateSettings(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		CancellationWindowHours *int   `json:"cancellation_window_hours"`
		CancellationFeeAmount   *int64 `json:"cancellation_fee_amount"`
		AllowCustomerSelfBook   *bool  `json:"allow_customer_self_book"`
		DefaultDurationMin      *int   `json:"default_duration_min"`
		DefaultPrice            *int64 `json:"default_price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.svc.UpdateSettings(c.Context(), businessID, business.UpdateSettingsRequest{
		CancellationWindowHours: body.CancellationWindowHours,
		CancellationFeeAmount:   body.CancellationFeeAmount,
		AllowCustomerSelfBook:   body.AllowCustomerSelfBook,
		DefaultDurationMin:      body.DefaultDurationMin,
		DefaultPrice:            body.DefaultPrice,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, st)
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

// GET /api/v1/business/members
func (h *BusinessHandler) ListMembers(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	members, err := h.svc.ListMembers(c.Context(), businessID)
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, members)
}

// POST /api/v1/business/members
func (h *BusinessHandler) AddMember(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	m, err := h.svc.AddMember(c.Context(), businessID, business.AddMemberRequest{
		UserID: userID,
		Role:   body.Role,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return created(c, m)
}

// PATCH /api/v1/business/members/:id
func (h *BusinessHandler) UpdateMember(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	var body struct {
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.UpdateMember(c.Context(), businessID, memberID, business.UpdateMemberRequest{
		Role:     body.Role,
		IsActive: body.IsActive,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, m)
}

// DELETE /api/v1/business/members/:id
func (h *BusinessHandler) RemoveMember(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	if err := h.svc.RemoveMember(c.Context(), businessID, memberID); err != nil {
		return mapBusinessError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Provider profiles
// ---------------------------------------------------------------------------

// GET /api/v1/business/providers
func (h *BusinessHandler) ListProviders(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		AcceptingOnly bool `query:"accepting_only"`
	}
	_ = c.Bind().Query(&q)

	providers, err := h.svc.ListProviders(c.Context(), businessID, q.AcceptingOnly)
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, providers)
}

// POST /api/v1/business/providers
func (h *BusinessHandler) CreateProvider(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		MemberID           string  `json:"member_id"`
		DisplayName        string  `json:"display_name"`
		Bio                *string `json:"bio"`
		DefaultDurationMin *int    `json:"default_duration_min"`
		DefaultPrice       *int64  `json:"default_price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	memberID, err := uuid.Parse(body.MemberID)
	if err != nil {
		return badRequest(c, "invalid member_id")
	}

	p, err := h.svc.CreateProviderProfile(c.Context(), businessID, business.CreateProviderProfileRequest{
		MemberID:           memberID,
		DisplayName:        body.DisplayName,
		Bio:                body.Bio,
		DefaultDurationMin: body.DefaultDurationMin,
		DefaultPrice:       body.DefaultPrice,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return created(c, p)
}

// PATCH /api/v1/business/providers/:id
func (h *BusinessHandler) UpdateProvider(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid provider profile id")
	}

	var body struct {
		DisplayName        *string `json:"display_name"`
		Bio                *string `json:"bio"`
		IsAccepting        *bool   `json:"is_accepting"`
		DefaultDurationMin *int    `json:"default_duration_min"`
		DefaultPrice       *int64  `json:"default_price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateProviderProfile(c.Context(), businessID, profileID, business.UpdateProviderProfileRequest{
		DisplayName:        body.DisplayName,
		Bio:                body.Bio,
		IsAccepting:        body.IsAccepting,
		DefaultDurationMin: body.DefaultDurationMin,
		DefaultPrice:       body.DefaultPrice,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, p)
}

// ---------------------------------------------------------------------------
// Service catalog
// ---------------------------------------------------------------------------

// GET /api/v1/business/offerings
func (h *BusinessHandler) ListOfferings(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		ActiveOnly bool `query:"active_only"`
	}
	_ = c.Bind().Query(&q)

	offerings, err := h.svc.ListOfferings(c.Context(), businessID, q.ActiveOnly)
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, offerings)
}

// POST /api/v1/business/offerings
func (h *BusinessHandler) CreateOffering(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		DurationMin int     `json:"duration_min"`
		Price       int64   `json:"price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	o, err := h.svc.CreateOffering(c.Context(), businessID, business.CreateOfferingRequest{
		Name:        body.Name,
		Description: body.Description,
		DurationMin: body.DurationMin,
		Price:       body.Price,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return created(c, o)
}

// PATCH /api/v1/business/offerings/:id
func (h *BusinessHandler) UpdateOffering(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	offeringID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		DurationMin *int    `json:"duration_min"`
		Price       *int64  `json:"price"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	o, err := h.svc.UpdateOffering(c.Context(), businessID, offeringID, business.UpdateOfferingRequest{
		Name:        body.Name,
		Description: body.Description,
		DurationMin: body.DurationMin,
		Price:       body.Price,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapBusinessError(c, err)
	}

	return ok(c, o)
}

// DELETE /api/v1/business/offerings/:id
func (h *BusinessHandler) DeleteOffering(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	offeringID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid offering id")
	}

	if err := h.svc.DeleteOffering(c.Context(), businessID, offeringID); err != nil {
		return mapBusinessError(c, err)
	}

	return noContent(c)
}
