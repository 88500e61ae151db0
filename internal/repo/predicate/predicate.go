// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilityRule is the predicate function for availabilityrule builders.
type AvailabilityRule func(*sql.Selector)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Business is the predicate function for business builders.
type Business func(*sql.Selector)

// BusinessMember is the predicate function for businessmember builders.
type BusinessMember func(*sql.Selector)

// BusinessSettings is the predicate function for businesssettings builders.
type BusinessSettings func(*sql.Selector)

// Charge is the predicate function for charge builders.
type Charge func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// ProviderProfile is the predicate function for providerprofile builders.
type ProviderProfile func(*sql.Selector)

// ServiceOffering is the predicate function for serviceoffering builders.
type ServiceOffering func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
