// Code generated by ent, DO NOT EDIT.

package providerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldBusinessID, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldMemberID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDisplayName, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldBio, v))
}

// IsAccepting applies equality check predicate on the "is_accepting" field. It's identical to IsAcceptingEQ.
func IsAccepting(v bool) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// DefaultDurationMin applies equality check predicate on the "default_duration_min" field. It's identical to DefaultDurationMinEQ.
func DefaultDurationMin(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultPrice applies equality check predicate on the "default_price" field. It's identical to DefaultPriceEQ.
func DefaultPrice(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDefaultPrice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldBusinessID, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v uuid.UUID) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldMemberID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldContainsFold(FieldDisplayName, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldContainsFold(FieldBio, v))
}

// IsAcceptingEQ applies the EQ predicate on the "is_accepting" field.
func IsAcceptingEQ(v bool) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// IsAcceptingNEQ applies the NEQ predicate on the "is_accepting" field.
func IsAcceptingNEQ(v bool) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldIsAccepting, v))
}

// DefaultDurationMinEQ applies the EQ predicate on the "default_duration_min" field.
func DefaultDurationMinEQ(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinNEQ applies the NEQ predicate on the "default_duration_min" field.
func DefaultDurationMinNEQ(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinIn applies the In predicate on the "default_duration_min" field.
func DefaultDurationMinIn(vs ...int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinNotIn applies the NotIn predicate on the "default_duration_min" field.
func DefaultDurationMinNotIn(vs ...int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinGT applies the GT predicate on the "default_duration_min" field.
func DefaultDurationMinGT(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinGTE applies the GTE predicate on the "default_duration_min" field.
func DefaultDurationMinGTE(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLT applies the LT predicate on the "default_duration_min" field.
func DefaultDurationMinLT(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLTE applies the LTE predicate on the "default_duration_min" field.
func DefaultDurationMinLTE(v int) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldDefaultDurationMin, v))
}

// DefaultDurationMinIsNil applies the IsNil predicate on the "default_duration_min" field.
func DefaultDurationMinIsNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIsNull(FieldDefaultDurationMin))
}

// DefaultDurationMinNotNil applies the NotNil predicate on the "default_duration_min" field.
func DefaultDurationMinNotNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotNull(FieldDefaultDurationMin))
}

// DefaultPriceEQ applies the EQ predicate on the "default_price" field.
func DefaultPriceEQ(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldEQ(FieldDefaultPrice, v))
}

// DefaultPriceNEQ applies the NEQ predicate on the "default_price" field.
func DefaultPriceNEQ(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNEQ(FieldDefaultPrice, v))
}

// DefaultPriceIn applies the In predicate on the "default_price" field.
func DefaultPriceIn(vs ...int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIn(FieldDefaultPrice, vs...))
}

// DefaultPriceNotIn applies the NotIn predicate on the "default_price" field.
func DefaultPriceNotIn(vs ...int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotIn(FieldDefaultPrice, vs...))
}

// DefaultPriceGT applies the GT predicate on the "default_price" field.
func DefaultPriceGT(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGT(FieldDefaultPrice, v))
}

// DefaultPriceGTE applies the GTE predicate on the "default_price" field.
func DefaultPriceGTE(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldGTE(FieldDefaultPrice, v))
}

// DefaultPriceLT applies the LT predicate on the "default_price" field.
func DefaultPriceLT(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLT(FieldDefaultPrice, v))
}

// DefaultPriceLTE applies the LTE predicate on the "default_price" field.
func DefaultPriceLTE(v int64) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldLTE(FieldDefaultPrice, v))
}

// DefaultPriceIsNil applies the IsNil predicate on the "default_price" field.
func DefaultPriceIsNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldIsNull(FieldDefaultPrice))
}

// DefaultPriceNotNil applies the NotNil predicate on the "default_price" field.
func DefaultPriceNotNil() predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.FieldNotNull(FieldDefaultPrice))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderProfile) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderProfile) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderProfile) predicate.ProviderProfile {
	return predicate.ProviderProfile(sql.NotPredicates(p))
}
