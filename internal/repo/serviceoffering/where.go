// Code generated by ent, DO NOT EDIT.

package serviceoffering

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDeletedAt, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldBusinessID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDescription, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDurationMin, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldPrice, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotNull(FieldDeletedAt))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v uuid.UUID) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldBusinessID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldContainsFold(FieldDescription, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldDurationMin, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldLTE(FieldPrice, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceOffering) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceOffering) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceOffering) predicate.ServiceOffering {
	return predicate.ServiceOffering(sql.NotPredicates(p))
}
