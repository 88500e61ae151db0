package scheduling

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/availability"
	"github.com/danahmadi/bookora_backend/internal/repo"
	entrule "github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	entprofile "github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRuleRequest struct {
	DayOfWeek     int
	StartTime     string // "HH:MM"
	EndTime       string // "HH:MM"
	IsAvailable   *bool  // nil means available
	EffectiveDate *string
	ExpiryDate    *string
}

type UpdateRuleRequest struct {
	DayOfWeek      *int
	StartTime      *string
	EndTime        *string
	IsAvailable    *bool
	EffectiveDate  *string
	ClearEffective bool
	ExpiryDate     *string
	ClearExpiry    bool
}

// DaySchedule is the resolved availability for one calendar date.
type DaySchedule struct {
	Date  string              `json:"date"`
	Rules []availability.Rule `json:"rules"`
}

// MaxResolveRangeDays bounds ResolveRange so a single request cannot scan
// an unbounded window.
const MaxResolveRangeDays = 62

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Rule management
	ListRules(ctx context.Context, businessID, providerID uuid.UUID) ([]*repo.AvailabilityRule, error)
	CreateRule(ctx context.Context, businessID, providerID uuid.UUID, req CreateRuleRequest) (*repo.AvailabilityRule, error)
	UpdateRule(ctx context.Context, businessID, providerID, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.AvailabilityRule, error)
	DeleteRule(ctx context.Context, businessID, providerID, ruleID uuid.UUID) error

	// Resolution
	ResolveDay(ctx context.Context, businessID, providerID uuid.UUID, date availability.Date) ([]availability.Rule, error)
	ResolveRange(ctx context.Context, businessID, providerID uuid.UUID, from, to availability.Date) ([]DaySchedule, error)

	// Accepting toggle (updates ProviderProfile.is_accepting)
	ToggleAccepting(ctx context.Context, businessID, providerID uuid.UUID, enabled bool) error

	// Public — no auth required; empty result when the provider is not accepting
	ResolvePublicDay(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]availability.Rule, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &schedulingService{db: db}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

func (s *schedulingService) ListRules(ctx context.Context, businessID, providerID uuid.UUID) ([]*repo.AvailabilityRule, error) {
	rules, err := s.db.AvailabilityRule.Query().
		Where(
			entrule.BusinessID(businessID),
			entrule.ProviderID(providerID),
		).
		Order(entrule.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability rules: %w", err)
	}
	return rules, nil
}

func (s *schedulingService) CreateRule(ctx context.Context, businessID, providerID uuid.UUID, req CreateRuleRequest) (*repo.AvailabilityRule, error) {
	if err := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := validateDateBounds(req.EffectiveDate, req.ExpiryDate); err != nil {
		return nil, err
	}

	c := s.db.AvailabilityRule.Create().
		SetBusinessID(businessID).
		SetProviderID(providerID).
		SetDayOfWeek(int8(req.DayOfWeek)).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime)

	if req.IsAvailable != nil {
		c = c.SetIsAvailable(*req.IsAvailable)
	}
	if req.EffectiveDate != nil {
		c = c.SetEffectiveDate(*req.EffectiveDate)
	}
	if req.ExpiryDate != nil {
		c = c.SetExpiryDate(*req.ExpiryDate)
	}

	rule, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability rule: %w", err)
	}
	return rule, nil
}

func (s *schedulingService) UpdateRule(ctx context.Context, businessID, providerID, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.AvailabilityRule, error) {
	rule, err := s.getRule(ctx, businessID, providerID, ruleID)
	if err != nil {
		return nil, err
	}

	// Validate the merged result, not just the patch.
	dow := int(rule.DayOfWeek)
	if req.DayOfWeek != nil {
		dow = *req.DayOfWeek
	}
	start := rule.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := rule.EndTime
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if err := validateWindow(dow, start, end); err != nil {
		return nil, err
	}

	effective := rule.EffectiveDate
	if req.ClearEffective {
		effective = nil
	} else if req.EffectiveDate != nil {
		effective = req.EffectiveDate
	}
	expiry := rule.ExpiryDate
	if req.ClearExpiry {
		expiry = nil
	} else if req.ExpiryDate != nil {
		expiry = req.ExpiryDate
	}
	if err := validateDateBounds(effective, expiry); err != nil {
		return nil, err
	}

	u := s.db.AvailabilityRule.UpdateOne(rule).
		SetDayOfWeek(int8(dow)).
		SetStartTime(start).
		SetEndTime(end)

	if req.IsAvailable != nil {
		u = u.SetIsAvailable(*req.IsAvailable)
	}
	if effective != nil {
		u = u.SetEffectiveDate(*effective)
	} else {
		u = u.ClearEffectiveDate()
	}
	if expiry != nil {
		u = u.SetExpiryDate(*expiry)
	} else {
		u = u.ClearExpiryDate()
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update availability rule: %w", err)
	}
	return updated, nil
}

func (s *schedulingService) DeleteRule(ctx context.Context, businessID, providerID, ruleID uuid.UUID) error {
	rule, err := s.getRule(ctx, businessID, providerID, ruleID)
	if err != nil {
		return err
	}
	return s.db.AvailabilityRule.DeleteOne(rule).Exec(ctx)
}

func (s *schedulingService) getRule(ctx context.Context, businessID, providerID, ruleID uuid.UUID) (*repo.AvailabilityRule, error) {
	rule, err := s.db.AvailabilityRule.Query().
		Where(entrule.ID(ruleID), entrule.BusinessID(businessID), entrule.ProviderID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get availability rule: %w", err)
	}
	return rule, nil
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

func (s *schedulingService) ResolveDay(ctx context.Context, businessID, providerID uuid.UUID, date availability.Date) ([]availability.Rule, error) {
	stored, err := s.ListRules(ctx, businessID, providerID)
	if err != nil {
		return nil, err
	}
	return sortedByStart(availability.Resolve(toRules(stored), date)), nil
}

func (s *schedulingService) ResolveRange(ctx context.Context, businessID, providerID uuid.UUID, from, to availability.Date) ([]DaySchedule, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	stored, err := s.ListRules(ctx, businessID, providerID)
	if err != nil {
		return nil, err
	}
	rules := toRules(stored)

	out := make([]DaySchedule, 0, MaxResolveRangeDays)
	for d := from; !to.Before(d); d = d.AddDays(1) {
		if len(out) >= MaxResolveRangeDays {
			return nil, ErrRangeTooLarge
		}
		out = append(out, DaySchedule{
			Date:  d.String(),
			Rules: sortedByStart(availability.Resolve(rules, d)),
		})
	}
	return out, nil
}

func (s *schedulingService) ResolvePublicDay(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]availability.Rule, error) {
	profile, err := s.db.ProviderProfile.Query().
		Where(entprofile.MemberID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get provider profile: %w", err)
	}
	if !profile.IsAccepting {
		return []availability.Rule{}, nil
	}

	stored, err := s.db.AvailabilityRule.Query().
		Where(entrule.ProviderID(providerID)).
		Order(entrule.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability rules: %w", err)
	}
	return sortedByStart(availability.Resolve(toRules(stored), date)), nil
}

// ---------------------------------------------------------------------------
// Accepting toggle
// ---------------------------------------------------------------------------

func (s *schedulingService) ToggleAccepting(ctx context.Context, businessID, providerID uuid.UUID, enabled bool) error {
	profile, err := s.db.ProviderProfile.Query().
		Where(entprofile.BusinessID(businessID), entprofile.MemberID(providerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("get provider profile: %w", err)
	}

	return s.db.ProviderProfile.UpdateOne(profile).
		SetIsAccepting(enabled).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// sortedByStart orders resolved rules for calendar display. The resolver
// itself preserves input order; display order is a presentation concern.
func sortedByStart(rules []availability.Rule) []availability.Rule {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].StartTime != rules[j].StartTime {
			return rules[i].StartTime < rules[j].StartTime
		}
		return rules[i].EndTime < rules[j].EndTime
	})
	return rules
}

func toRules(stored []*repo.AvailabilityRule) []availability.Rule {
	out := make([]availability.Rule, 0, len(stored))
	for _, r := range stored {
		out = append(out, availability.Rule{
			ID:            r.ID,
			DayOfWeek:     int(r.DayOfWeek),
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			IsAvailable:   r.IsAvailable,
			EffectiveDate: r.EffectiveDate,
			ExpiryDate:    r.ExpiryDate,
		})
	}
	return out
}
