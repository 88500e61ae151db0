package business

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/danahmadi/bookora_backend/internal/repo"
	entbusiness "github.com/danahmadi/bookora_backend/internal/repo/business"
	entmember "github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	entsettings "github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	entprofile "github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListBusinessesRequest struct {
	Page    int
	PerPage int
	Active  *bool
}

type CreateBusinessRequest struct {
	Name        string
	Slug        string
	Description string
	Phone       string
	Address     string
	City        string
	Timezone    string
}

type UpdateBusinessRequest struct {
	Name        *string
	Description *string
	Phone       *string
	Address     *string
	City        *string
	Timezone    *string
	IsActive    *bool
}

type UpdateSettingsRequest struct {
	CancellationWindowHours *int
	CancellationFeeAmount   *int64
	AllowCustomerSelfBook   *bool
	DefaultDurationMin      *int
	DefaultPrice            *int64
}

type AddMemberRequest struct {
	UserID uuid.UUID
	Role   string // owner | admin | provider | assistant
}

type UpdateMemberRequest struct {
	Role     *string
	IsActive *bool
}

type CreateProviderProfileRequest struct {
	MemberID           uuid.UUID
	DisplayName        string
	Bio                *string
	DefaultDurationMin *int
	DefaultPrice       *int64
}

type UpdateProviderProfileRequest struct {
	DisplayName        *string
	Bio                *string
	IsAccepting        *bool
	DefaultDurationMin *int
	DefaultPrice       *int64
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateBusiness(ctx context.Context, userID uuid.UUID, req CreateBusinessRequest) (*repo.Business, error)
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*repo.Business, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*repo.Business, error)
	ListBusinesses(ctx context.Context, req ListBusinessesRequest) (*PaginatedResult[*repo.Business], error)
	UpdateBusiness(ctx context.Context, businessID uuid.UUID, req UpdateBusinessRequest) (*repo.Business, error)

	GetSettings(ctx context.Context, businessID uuid.UUID) (*repo.BusinessSettings, error)
	UpdateSettings(ctx context.Context, businessID uuid.UUID, req UpdateSettingsRequest) (*repo.BusinessSettings, error)

	ListMembers(ctx context.Context, businessID uuid.UUID) ([]*repo.BusinessMember, error)
	AddMember(ctx context.Context, businessID uuid.UUID, req AddMemberRequest) (*repo.BusinessMember, error)
	UpdateMember(ctx context.Context, businessID, memberID uuid.UUID, req UpdateMemberRequest) (*repo.BusinessMember, error)
	RemoveMember(ctx context.Context, businessID, memberID uuid.UUID) error
	IsMember(ctx context.Context, businessID, userID uuid.UUID) (bool, error)

	CreateProviderProfile(ctx context.Context, businessID uuid.UUID, req CreateProviderProfileRequest) (*repo.ProviderProfile, error)
	UpdateProviderProfile(ctx context.Context, businessID, profileID uuid.UUID, req UpdateProviderProfileRequest) (*repo.ProviderProfile, error)
	ListProviders(ctx context.Context, businessID uuid.UUID, acceptingOnly bool) ([]*repo.ProviderProfile, error)

	ListOfferings(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*repo.ServiceOffering, error)
	GetOffering(ctx context.Context, businessID, offeringID uuid.UUID) (*repo.ServiceOffering, error)
	CreateOffering(ctx context.Context, businessID uuid.UUID, req CreateOfferingRequest) (*repo.ServiceOffering, error)
	UpdateOffering(ctx context.Context, businessID, offeringID uuid.UUID, req UpdateOfferingRequest) (*repo.ServiceOffering, error)
	DeleteOffering(ctx context.Context, businessID, offeringID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type businessService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &businessService{db: db, auth: auth}
}

// ---------------------------------------------------------------------------
// Business CRUD
// ---------------------------------------------------------------------------

func (s *businessService) CreateBusiness(ctx context.Context, userID uuid.UUID, req CreateBusinessRequest) (*repo.Business, error) {
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}
	if req.Slug == "" {
		return nil, ErrInvalidSlug
	}

	exists, err := s.db.Business.Query().Where(entbusiness.Slug(req.Slug)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	// Business, owner membership and default settings are created atomically.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c := tx.Business.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		SetNillableDescription(nilIfEmpty(req.Description)).
		SetNillablePhone(nilIfEmpty(req.Phone)).
		SetNillableAddress(nilIfEmpty(req.Address)).
		SetNillableCity(nilIfEmpty(req.City)).
		SetIsActive(true)
	if req.Timezone != "" {
		c = c.SetTimezone(req.Timezone)
	}

	b, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	_, err = tx.BusinessMember.Create().
		SetBusinessID(b.ID).
		SetUserID(userID).
		SetRole(entmember.RoleOwner).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create owner member: %w", err)
	}

	_, err = tx.BusinessSettings.Create().
		SetBusinessID(b.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	if err := authorize.AssignBusinessOwnerRole(ctx, s.auth, userID.String(), b.ID.String()); err != nil {
		// RBAC can be repaired; don't fail the request
		slog.Warn("assign business owner role", "user_id", userID, "business_id", b.ID, "error", err)
	}

	return b, nil
}

func (s *businessService) GetBusiness(ctx context.Context, businessID uuid.UUID) (*repo.Business, error) {
	b, err := s.db.Business.Query().
		Where(entbusiness.ID(businessID), entbusiness.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

func (s *businessService) GetBusinessBySlug(ctx context.Context, slug string) (*repo.Business, error) {
	b, err := s.db.Business.Query().
		Where(entbusiness.Slug(slug), entbusiness.DeletedAtIsNil(), entbusiness.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("get business by slug: %w", err)
	}
	return b, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, req ListBusinessesRequest) (*PaginatedResult[*repo.Business], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Business.Query().Where(entbusiness.DeletedAtIsNil())
	if req.Active != nil {
		q = q.Where(entbusiness.IsActive(*req.Active))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count businesses: %w", err)
	}

	businesses, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Business]{
		Data:       businesses,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *businessService) UpdateBusiness(ctx context.Context, businessID uuid.UUID, req UpdateBusinessRequest) (*repo.Business, error) {
	b, err := s.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Business.UpdateOne(b)
	if req.Name != nil {
		upd = upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(req.Description)
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(req.Phone)
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(req.Address)
	}
	if req.City != nil {
		upd = upd.SetNillableCity(req.City)
	}
	if req.Timezone != nil {
		upd = upd.SetTimezone(*req.Timezone)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	return upd.Save(ctx)
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func (s *businessService) GetSettings(ctx context.Context, businessID uuid.UUID) (*repo.BusinessSettings, error) {
	st, err := s.db.BusinessSettings.Query().
		Where(entsettings.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

func (s *businessService) UpdateSettings(ctx context.Context, businessID uuid.UUID, req UpdateSettingsRequest) (*repo.BusinessSettings, error) {
	st, err := s.GetSettings(ctx, businessID)
	if err != nil {
		return nil, err
	}

	upd := s.db.BusinessSettings.UpdateOne(st)
	if req.CancellationWindowHours != nil {
		upd = upd.SetCancellationWindowHours(*req.CancellationWindowHours)
	}
	if req.CancellationFeeAmount != nil {
		upd = upd.SetCancellationFeeAmount(*req.CancellationFeeAmount)
	}
	if req.AllowCustomerSelfBook != nil {
		upd = upd.SetAllowCustomerSelfBook(*req.AllowCustomerSelfBook)
	}
	if req.DefaultDurationMin != nil {
		upd = upd.SetDefaultDurationMin(*req.DefaultDurationMin)
	}
	if req.DefaultPrice != nil {
		upd = upd.SetDefaultPrice(*req.DefaultPrice)
	}

	return upd.Save(ctx)
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

func (s *businessService) ListMembers(ctx context.Context, businessID uuid.UUID) ([]*repo.BusinessMember, error) {
	return s.db.BusinessMember.Query().
		Where(entmember.BusinessID(businessID), entmember.IsActive(true)).
		WithUser().
		All(ctx)
}

func (s *businessService) AddMember(ctx context.Context, businessID uuid.UUID, req AddMemberRequest) (*repo.BusinessMember, error) {
	if !isValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	exists, err := s.db.BusinessMember.Query().
		Where(entmember.BusinessID(businessID), entmember.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if exists {
		return nil, ErrAlreadyMember
	}

	m, err := s.db.BusinessMember.Create().
		SetBusinessID(businessID).
		SetUserID(req.UserID).
		SetRole(entmember.Role(req.Role)).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	casbinRole := authorize.BusinessMemberRoleToRBACRole[req.Role]
	if casbinRole != "" {
		authorize.AssignBusinessRole(ctx, s.auth, req.UserID.String(), businessID.String(), casbinRole)
	}

	return m, nil
}

func (s *businessService) UpdateMember(ctx context.Context, businessID, memberID uuid.UUID, req UpdateMemberRequest) (*repo.BusinessMember, error) {
	m, err := s.db.BusinessMember.Query().
		Where(entmember.ID(memberID), entmember.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	if req.Role != nil && !isValidRole(*req.Role) {
		return nil, ErrInvalidRole
	}

	upd := s.db.BusinessMember.UpdateOne(m)
	if req.Role != nil {
		oldCasbinRole := authorize.BusinessMemberRoleToRBACRole[string(m.Role)]
		if oldCasbinRole != "" {
			authorize.RemoveBusinessRole(ctx, s.auth, m.UserID.String(), businessID.String(), oldCasbinRole)
		}
		newCasbinRole := authorize.BusinessMemberRoleToRBACRole[*req.Role]
		if newCasbinRole != "" {
			authorize.AssignBusinessRole(ctx, s.auth, m.UserID.String(), businessID.String(), newCasbinRole)
		}
		upd = upd.SetRole(entmember.Role(*req.Role))
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	return upd.Save(ctx)
}

func (s *businessService) RemoveMember(ctx context.Context, businessID, memberID uuid.UUID) error {
	m, err := s.db.BusinessMember.Query().
		Where(entmember.ID(memberID), entmember.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("get member: %w", err)
	}
	if m.Role == entmember.RoleOwner {
		return ErrCannotRemoveOwner
	}

	casbinRole := authorize.BusinessMemberRoleToRBACRole[string(m.Role)]
	if casbinRole != "" {
		authorize.RemoveBusinessRole(ctx, s.auth, m.UserID.String(), businessID.String(), casbinRole)
	}

	return s.db.BusinessMember.DeleteOne(m).Exec(ctx)
}

func (s *businessService) IsMember(ctx context.Context, businessID, userID uuid.UUID) (bool, error) {
	return s.db.BusinessMember.Query().
		Where(entmember.BusinessID(businessID), entmember.UserID(userID), entmember.IsActive(true)).
		Exist(ctx)
}

// ---------------------------------------------------------------------------
// Provider profiles
// ---------------------------------------------------------------------------

func (s *businessService) CreateProviderProfile(ctx context.Context, businessID uuid.UUID, req CreateProviderProfileRequest) (*repo.ProviderProfile, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrInvalidDisplayName
	}

	m, err := s.db.BusinessMember.Query().
		Where(entmember.ID(req.MemberID), entmember.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	if m.Role != entmember.RoleProvider {
		return nil, ErrNotProvider
	}

	exists, err := s.db.ProviderProfile.Query().
		Where(entprofile.MemberID(req.MemberID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return nil, ErrProfileExists
	}

	c := s.db.ProviderProfile.Create().
		SetBusinessID(businessID).
		SetMemberID(req.MemberID).
		SetDisplayName(req.DisplayName).
		SetIsAccepting(true)
	if req.Bio != nil {
		c = c.SetNillableBio(req.Bio)
	}
	if req.DefaultDurationMin != nil {
		c = c.SetNillableDefaultDurationMin(req.DefaultDurationMin)
	}
	if req.DefaultPrice != nil {
		c = c.SetNillableDefaultPrice(req.DefaultPrice)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create provider profile: %w", err)
	}
	return p, nil
}

func (s *businessService) UpdateProviderProfile(ctx context.Context, businessID, profileID uuid.UUID, req UpdateProviderProfileRequest) (*repo.ProviderProfile, error) {
	p, err := s.db.ProviderProfile.Query().
		Where(entprofile.ID(profileID), entprofile.BusinessID(businessID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get provider profile: %w", err)
	}

	upd := s.db.ProviderProfile.UpdateOne(p)
	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, ErrInvalidDisplayName
		}
		upd = upd.SetDisplayName(*req.DisplayName)
	}
	if req.Bio != nil {
		upd = upd.SetNillableBio(req.Bio)
	}
	if req.IsAccepting != nil {
		upd = upd.SetIsAccepting(*req.IsAccepting)
	}
	if req.DefaultDurationMin != nil {
		upd = upd.SetNillableDefaultDurationMin(req.DefaultDurationMin)
	}
	if req.DefaultPrice != nil {
		upd = upd.SetNillableDefaultPrice(req.DefaultPrice)
	}

	return upd.Save(ctx)
}

func (s *businessService) ListProviders(ctx context.Context, businessID uuid.UUID, acceptingOnly bool) ([]*repo.ProviderProfile, error) {
	q := s.db.ProviderProfile.Query().
		Where(entprofile.BusinessID(businessID))
	if acceptingOnly {
		q = q.Where(entprofile.IsAccepting(true))
	}
	return q.All(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func isValidRole(role string) bool {
	switch role {
	case "owner", "admin", "provider", "assistant":
		return true
	}
	return false
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == ' ' || r == '-' {
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
