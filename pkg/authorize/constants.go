package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"

	// Business (tenant management)
	ResourceBusiness         Resource = "business"
	ResourceBusinessMember   Resource = "business_member"
	ResourceBusinessSettings Resource = "business_settings"

	// Catalog
	ResourceProviderProfile Resource = "provider_profile"
	ResourceServiceOffering Resource = "service_offering"
	ResourceCustomer        Resource = "customer"

	// Scheduling
	ResourceAvailabilityRule Resource = "availability_rule"
	ResourceBooking          Resource = "booking"

	// Financial
	ResourceCharge Resource = "charge"

	// Communication
	ResourceNotification Resource = "notification"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourceBusiness: {}, ResourceBusinessMember: {}, ResourceBusinessSettings: {},
	ResourceProviderProfile: {}, ResourceServiceOffering: {}, ResourceCustomer: {},
	ResourceAvailabilityRule: {}, ResourceBooking: {},
	ResourceCharge:       {},
	ResourceNotification: {},
	ResourceSystem:       {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Business roles (domain = business:<uuid>)
	RoleBusinessOwner     Role = "role:business:owner"
	RoleBusinessAdmin     Role = "role:business:admin"
	RoleBusinessProvider  Role = "role:business:provider"
	RoleBusinessAssistant Role = "role:business:assistant"
	RoleBusinessCustomer  Role = "role:business:customer"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin:     {},
	RoleBusinessOwner:     {},
	RoleBusinessAdmin:     {},
	RoleBusinessProvider:  {},
	RoleBusinessAssistant: {},
	RoleBusinessCustomer:  {},
	RoleUserSelf:          {},
}

// Business member role strings (stored in DB business_members.role column)
const (
	BusinessMemberRoleOwner     = "owner"
	BusinessMemberRoleAdmin     = "admin"
	BusinessMemberRoleProvider  = "provider"
	BusinessMemberRoleAssistant = "assistant"
)

// BusinessMemberRoleToRBACRole maps DB role values to Casbin roles
var BusinessMemberRoleToRBACRole = map[string]Role{
	BusinessMemberRoleOwner:     RoleBusinessOwner,
	BusinessMemberRoleAdmin:     RoleBusinessAdmin,
	BusinessMemberRoleProvider:  RoleBusinessProvider,
	BusinessMemberRoleAssistant: RoleBusinessAssistant,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixBusiness Domain = "business:"
	DomainPrefixUser     Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func BusinessDomain(businessID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixBusiness, businessID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixBusiness) && s[:len(DomainPrefixBusiness)] == string(DomainPrefixBusiness):
		return reUUID.MatchString(s[len(DomainPrefixBusiness):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
