package business

import "errors"

var (
	ErrBusinessNotFound   = errors.New("business not found")
	ErrSlugAlreadyExists  = errors.New("slug is already taken")
	ErrInvalidSlug        = errors.New("slug could not be derived from the business name")
	ErrMemberNotFound     = errors.New("member not found")
	ErrAlreadyMember      = errors.New("user is already a member of this business")
	ErrInvalidRole        = errors.New("invalid member role")
	ErrCannotRemoveOwner  = errors.New("owner cannot be removed")
	ErrProfileNotFound    = errors.New("provider profile not found")
	ErrProfileExists      = errors.New("member already has a provider profile")
	ErrNotProvider        = errors.New("member does not have the provider role")
	ErrInvalidDisplayName = errors.New("display name is required")

	ErrOfferingNotFound    = errors.New("service offering not found")
	ErrInvalidOfferingName = errors.New("offering name is required")
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrInvalidPrice        = errors.New("price must not be negative")
)
