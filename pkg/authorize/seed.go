package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Business-level policies (domain: business:*)
	businessPolicies := []PermissionPolicy{
		// Owner: full control within the business
		{RoleBusinessOwner, WildcardDomain, ResourceBusiness, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceBusinessMember, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceBusinessSettings, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceProviderProfile, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceServiceOffering, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceCustomer, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceBooking, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceCharge, ActionManage, EffectAllow},
		{RoleBusinessOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},

		// Admin: manage day-to-day operations but not RBAC or the tenant itself
		{RoleBusinessAdmin, WildcardDomain, ResourceBusiness, ActionRead, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceBusinessMember, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceBusinessSettings, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceProviderProfile, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceServiceOffering, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceCustomer, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceBooking, ActionManage, EffectAllow},
		{RoleBusinessAdmin, WildcardDomain, ResourceCharge, ActionManage, EffectAllow},

		// Provider: own schedule and bookings
		{RoleBusinessProvider, WildcardDomain, ResourceBusiness, ActionRead, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceProviderProfile, ActionUpdate, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceProviderProfile, ActionRead, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceAvailabilityRule, ActionManage, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceBooking, ActionRead, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceBooking, ActionUpdate, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceBooking, ActionList, EffectAllow},
		{RoleBusinessProvider, WildcardDomain, ResourceCustomer, ActionRead, EffectAllow},

		// Assistant: front-desk work, no schedule editing
		{RoleBusinessAssistant, WildcardDomain, ResourceBusiness, ActionRead, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceCustomer, ActionManage, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceBooking, ActionManage, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceAvailabilityRule, ActionRead, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceAvailabilityRule, ActionList, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceCharge, ActionCreate, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceCharge, ActionRead, EffectAllow},
		{RoleBusinessAssistant, WildcardDomain, ResourceCharge, ActionList, EffectAllow},

		// Customer: self-service booking
		{RoleBusinessCustomer, WildcardDomain, ResourceBooking, ActionCreate, EffectAllow},
		{RoleBusinessCustomer, WildcardDomain, ResourceBooking, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceBusiness, ActionCreate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, businessPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignBusinessOwnerRole assigns the business:owner role to a user for a specific business.
// Call this when creating a new business.
func AssignBusinessOwnerRole(ctx context.Context, auth IAuthorization, userID, businessID string) error {
	domain := BusinessDomain(businessID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleBusinessOwner, domain)
	return err
}

// AssignBusinessRole assigns a business role to a user for a specific business.
// Use this when adding members to a business with a specific role.
func AssignBusinessRole(ctx context.Context, auth IAuthorization, userID, businessID string, role Role) error {
	switch role {
	case RoleBusinessOwner, RoleBusinessAdmin, RoleBusinessProvider, RoleBusinessAssistant, RoleBusinessCustomer:
		// valid business roles
	default:
		return ErrInvalidArgs
	}

	domain := BusinessDomain(businessID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveBusinessRole removes a business role from a user for a specific business.
func RemoveBusinessRole(ctx context.Context, auth IAuthorization, userID, businessID string, role Role) error {
	domain := BusinessDomain(businessID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetBusinessRoles returns all roles a user has in a specific business.
func GetBusinessRoles(ctx context.Context, auth IAuthorization, userID, businessID string) ([]Role, error) {
	domain := BusinessDomain(businessID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}
