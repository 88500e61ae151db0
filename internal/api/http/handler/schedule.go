package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/availability"
	"github.com/danahmadi/bookora_backend/internal/service/scheduling"
)

type ScheduleHandler struct {
	svc scheduling.Service
}

func NewScheduleHandler(svc scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrRuleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTime):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDayOfWeek):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrExpiryWithoutEffective):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrExpiryBeforeEffective):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrInvalidDateRange):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrRangeTooLarge):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// providerFromRequest resolves which provider's schedule is being addressed:
// an explicit provider_id query param (admins managing someone else's calendar)
// or the caller's own membership.
func providerFromRequest(c fiber.Ctx) (uuid.UUID, bool) {
	if s := c.Query("provider_id"); s != "" {
		id, err := uuid.Parse(s)
		return id, err == nil
	}
	return memberIDFromLocals(c)
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

// GET /api/v1/schedule/rules
func (h *ScheduleHandler) ListRules(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	rules, err := h.svc.ListRules(c.Context(), businessID, providerID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, rules)
}

// POST /api/v1/schedule/rules
func (h *ScheduleHandler) CreateRule(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	var body struct {
		DayOfWeek     int     `json:"day_of_week"`
		StartTime     string  `json:"start_time"`
		EndTime       string  `json:"end_time"`
		IsAvailable   *bool   `json:"is_available"`
		EffectiveDate *string `json:"effective_date"`
		ExpiryDate    *string `json:"expiry_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rule, err := h.svc.CreateRule(c.Context(), businessID, providerID, scheduling.CreateRuleRequest{
		DayOfWeek:     body.DayOfWeek,
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
		IsAvailable:   body.IsAvailable,
		EffectiveDate: body.EffectiveDate,
		ExpiryDate:    body.ExpiryDate,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return created(c, rule)
}

// PATCH /api/v1/schedule/rules/:id
func (h *ScheduleHandler) UpdateRule(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	var body struct {
		DayOfWeek      *int    `json:"day_of_week"`
		StartTime      *string `json:"start_time"`
		EndTime        *string `json:"end_time"`
		IsAvailable    *bool   `json:"is_available"`
		EffectiveDate  *string `json:"effective_date"`
		ClearEffective bool    `json:"clear_effective"`
		ExpiryDate     *string `json:"expiry_date"`
		ClearExpiry    bool    `json:"clear_expiry"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rule, err := h.svc.UpdateRule(c.Context(), businessID, providerID, ruleID, scheduling.UpdateRuleRequest{
		DayOfWeek:      body.DayOfWeek,
		StartTime:      body.StartTime,
		EndTime:        body.EndTime,
		IsAvailable:    body.IsAvailable,
		EffectiveDate:  body.EffectiveDate,
		ClearEffective: body.ClearEffective,
		ExpiryDate:     body.ExpiryDate,
		ClearExpiry:    body.ClearExpiry,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, rule)
}

// DELETE /api/v1/schedule/rules/:id
func (h *ScheduleHandler) DeleteRule(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	if err := h.svc.DeleteRule(c.Context(), businessID, providerID, ruleID); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

// GET /api/v1/schedule/resolve?date=YYYY-MM-DD
func (h *ScheduleHandler) ResolveDay(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be zero-padded YYYY-MM-DD")
	}

	rules, err := h.svc.ResolveDay(c.Context(), businessID, providerID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, rules)
}

// GET /api/v1/schedule/range?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ScheduleHandler) ResolveRange(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	from, err := availability.ParseDate(c.Query("from"))
	if err != nil {
		return badRequest(c, "from must be zero-padded YYYY-MM-DD")
	}
	to, err := availability.ParseDate(c.Query("to"))
	if err != nil {
		return badRequest(c, "to must be zero-padded YYYY-MM-DD")
	}

	days, err := h.svc.ResolveRange(c.Context(), businessID, providerID, from, to)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, days)
}

// ---------------------------------------------------------------------------
// Accepting toggle
// ---------------------------------------------------------------------------

// PATCH /api/v1/schedule/toggle
func (h *ScheduleHandler) Toggle(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}
	providerID, valid := providerFromRequest(c)
	if !valid {
		return badRequest(c, "invalid provider_id")
	}

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ToggleAccepting(c.Context(), businessID, providerID, body.Enabled); err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{"enabled": body.Enabled})
}

// ---------------------------------------------------------------------------
// Public listing
// ---------------------------------------------------------------------------

// GET /api/v1/providers/:pid/availability?date=YYYY-MM-DD
func (h *ScheduleHandler) PublicDay(c fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("pid"))
	if err != nil {
		return badRequest(c, "invalid provider id")
	}

	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be zero-padded YYYY-MM-DD")
	}

	rules, err := h.svc.ResolvePublicDay(c.Context(), providerID, date)
	if err != nil {
		if errors.Is(err, scheduling.ErrProfileNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, rules)
}
