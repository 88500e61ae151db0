// Code generated by ent, DO NOT EDIT.

package availabilityrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldBusinessID, v))
}

// ProviderID applies equality check predicate on the "provider_id" field. It's identical to ProviderIDEQ.
func ProviderID(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldProviderID, v))
}

// DayOfWeek applies equality check predicate on the "day_of_week" field. It's identical to DayOfWeekEQ.
func DayOfWeek(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndTime, v))
}

// IsAvailable applies equality check predicate on the "is_available" field. It's identical to IsAvailableEQ.
func IsAvailable(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsAvailable, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEffectiveDate, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldExpiryDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldBusinessID, v))
}

// ProviderIDEQ applies the EQ predicate on the "provider_id" field.
func ProviderIDEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldProviderID, v))
}

// ProviderIDNEQ applies the NEQ predicate on the "provider_id" field.
func ProviderIDNEQ(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldProviderID, v))
}

// ProviderIDIn applies the In predicate on the "provider_id" field.
func ProviderIDIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldProviderID, vs...))
}

// ProviderIDNotIn applies the NotIn predicate on the "provider_id" field.
func ProviderIDNotIn(vs ...uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldProviderID, vs...))
}

// ProviderIDGT applies the GT predicate on the "provider_id" field.
func ProviderIDGT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldProviderID, v))
}

// ProviderIDGTE applies the GTE predicate on the "provider_id" field.
func ProviderIDGTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldProviderID, v))
}

// ProviderIDLT applies the LT predicate on the "provider_id" field.
func ProviderIDLT(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldProviderID, v))
}

// ProviderIDLTE applies the LTE predicate on the "provider_id" field.
func ProviderIDLTE(v uuid.UUID) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldProviderID, v))
}

// DayOfWeekEQ applies the EQ predicate on the "day_of_week" field.
func DayOfWeekEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldDayOfWeek, v))
}

// DayOfWeekNEQ applies the NEQ predicate on the "day_of_week" field.
func DayOfWeekNEQ(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldDayOfWeek, v))
}

// DayOfWeekIn applies the In predicate on the "day_of_week" field.
func DayOfWeekIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldDayOfWeek, vs...))
}

// DayOfWeekNotIn applies the NotIn predicate on the "day_of_week" field.
func DayOfWeekNotIn(vs ...int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldDayOfWeek, vs...))
}

// DayOfWeekGT applies the GT predicate on the "day_of_week" field.
func DayOfWeekGT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldDayOfWeek, v))
}

// DayOfWeekGTE applies the GTE predicate on the "day_of_week" field.
func DayOfWeekGTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldDayOfWeek, v))
}

// DayOfWeekLT applies the LT predicate on the "day_of_week" field.
func DayOfWeekLT(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldDayOfWeek, v))
}

// DayOfWeekLTE applies the LTE predicate on the "day_of_week" field.
func DayOfWeekLTE(v int8) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldDayOfWeek, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldEndTime, v))
}

// IsAvailableEQ applies the EQ predicate on the "is_available" field.
func IsAvailableEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldIsAvailable, v))
}

// IsAvailableNEQ applies the NEQ predicate on the "is_available" field.
func IsAvailableNEQ(v bool) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldIsAvailable, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateContains applies the Contains predicate on the "effective_date" field.
func EffectiveDateContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldEffectiveDate, v))
}

// EffectiveDateHasPrefix applies the HasPrefix predicate on the "effective_date" field.
func EffectiveDateHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldEffectiveDate, v))
}

// EffectiveDateHasSuffix applies the HasSuffix predicate on the "effective_date" field.
func EffectiveDateHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotNull(FieldEffectiveDate))
}

// EffectiveDateEqualFold applies the EqualFold predicate on the "effective_date" field.
func EffectiveDateEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldEffectiveDate, v))
}

// EffectiveDateContainsFold applies the ContainsFold predicate on the "effective_date" field.
func EffectiveDateContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldEffectiveDate, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateContains applies the Contains predicate on the "expiry_date" field.
func ExpiryDateContains(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContains(FieldExpiryDate, v))
}

// ExpiryDateHasPrefix applies the HasPrefix predicate on the "expiry_date" field.
func ExpiryDateHasPrefix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasPrefix(FieldExpiryDate, v))
}

// ExpiryDateHasSuffix applies the HasSuffix predicate on the "expiry_date" field.
func ExpiryDateHasSuffix(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldHasSuffix(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldNotNull(FieldExpiryDate))
}

// ExpiryDateEqualFold applies the EqualFold predicate on the "expiry_date" field.
func ExpiryDateEqualFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldEqualFold(FieldExpiryDate, v))
}

// ExpiryDateContainsFold applies the ContainsFold predicate on the "expiry_date" field.
func ExpiryDateContainsFold(v string) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.FieldContainsFold(FieldExpiryDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilityRule) predicate.AvailabilityRule {
	return predicate.AvailabilityRule(sql.NotPredicates(p))
}
