// Code generated by ent, DO NOT EDIT.

package businesssettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldBusinessID, v))
}

// CancellationWindowHours applies equality check predicate on the "cancellation_window_hours" field. It's identical to CancellationWindowHoursEQ.
func CancellationWindowHours(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCancellationWindowHours, v))
}

// CancellationFeeAmount applies equality check predicate on the "cancellation_fee_amount" field. It's identical to CancellationFeeAmountEQ.
func CancellationFeeAmount(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCancellationFeeAmount, v))
}

// AllowCustomerSelfBook applies equality check predicate on the "allow_customer_self_book" field. It's identical to AllowCustomerSelfBookEQ.
func AllowCustomerSelfBook(v bool) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldAllowCustomerSelfBook, v))
}

// DefaultDurationMin applies equality check predicate on the "default_duration_min" field. It's identical to DefaultDurationMinEQ.
func DefaultDurationMin(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultPrice applies equality check predicate on the "default_price" field. It's identical to DefaultPriceEQ.
func DefaultPrice(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDefaultPrice, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldBusinessID, vs...))
}

// CancellationWindowHoursEQ applies the EQ predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursEQ(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursNEQ applies the NEQ predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursNEQ(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursIn applies the In predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursIn(vs ...int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldCancellationWindowHours, vs...))
}

// CancellationWindowHoursNotIn applies the NotIn predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursNotIn(vs ...int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldCancellationWindowHours, vs...))
}

// CancellationWindowHoursGT applies the GT predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursGT(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursGTE applies the GTE predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursGTE(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursLT applies the LT predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursLT(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursLTE applies the LTE predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursLTE(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldCancellationWindowHours, v))
}

// CancellationFeeAmountEQ applies the EQ predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountEQ(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldCancellationFeeAmount, v))
}

// CancellationFeeAmountNEQ applies the NEQ predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountNEQ(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldCancellationFeeAmount, v))
}

// CancellationFeeAmountIn applies the In predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountIn(vs ...int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldCancellationFeeAmount, vs...))
}

// CancellationFeeAmountNotIn applies the NotIn predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountNotIn(vs ...int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldCancellationFeeAmount, vs...))
}

// CancellationFeeAmountGT applies the GT predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountGT(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldCancellationFeeAmount, v))
}

// CancellationFeeAmountGTE applies the GTE predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountGTE(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldCancellationFeeAmount, v))
}

// CancellationFeeAmountLT applies the LT predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountLT(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldCancellationFeeAmount, v))
}

// CancellationFeeAmountLTE applies the LTE predicate on the "cancellation_fee_amount" field.
func CancellationFeeAmountLTE(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldCancellationFeeAmount, v))
}

// AllowCustomerSelfBookEQ applies the EQ predicate on the "allow_customer_self_book" field.
func AllowCustomerSelfBookEQ(v bool) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldAllowCustomerSelfBook, v))
}

// AllowCustomerSelfBookNEQ applies the NEQ predicate on the "allow_customer_self_book" field.
func AllowCustomerSelfBookNEQ(v bool) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldAllowCustomerSelfBook, v))
}

// DefaultDurationMinEQ applies the EQ predicate on the "default_duration_min" field.
func DefaultDurationMinEQ(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinNEQ applies the NEQ predicate on the "default_duration_min" field.
func DefaultDurationMinNEQ(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinIn applies the In predicate on the "default_duration_min" field.
func DefaultDurationMinIn(vs ...int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinNotIn applies the NotIn predicate on the "default_duration_min" field.
func DefaultDurationMinNotIn(vs ...int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinGT applies the GT predicate on the "default_duration_min" field.
func DefaultDurationMinGT(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinGTE applies the GTE predicate on the "default_duration_min" field.
func DefaultDurationMinGTE(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLT applies the LT predicate on the "default_duration_min" field.
func DefaultDurationMinLT(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLTE applies the LTE predicate on the "default_duration_min" field.
func DefaultDurationMinLTE(v int) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldDefaultDurationMin, v))
}

// DefaultPriceEQ applies the EQ predicate on the "default_price" field.
func DefaultPriceEQ(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldEQ(FieldDefaultPrice, v))
}

// DefaultPriceNEQ applies the NEQ predicate on the "default_price" field.
func DefaultPriceNEQ(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNEQ(FieldDefaultPrice, v))
}

// DefaultPriceIn applies the In predicate on the "default_price" field.
func DefaultPriceIn(vs ...int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldIn(FieldDefaultPrice, vs...))
}

// DefaultPriceNotIn applies the NotIn predicate on the "default_price" field.
func DefaultPriceNotIn(vs ...int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldNotIn(FieldDefaultPrice, vs...))
}

// DefaultPriceGT applies the GT predicate on the "default_price" field.
func DefaultPriceGT(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGT(FieldDefaultPrice, v))
}

// DefaultPriceGTE applies the GTE predicate on the "default_price" field.
func DefaultPriceGTE(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldGTE(FieldDefaultPrice, v))
}

// DefaultPriceLT applies the LT predicate on the "default_price" field.
func DefaultPriceLT(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLT(FieldDefaultPrice, v))
}

// DefaultPriceLTE applies the LTE predicate on the "default_price" field.
func DefaultPriceLTE(v int64) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.FieldLTE(FieldDefaultPrice, v))
}

// HasBusiness applies the HasEdge predicate on the "business" edge.
func HasBusiness() predicate.BusinessSettings {
	return predicate.BusinessSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, BusinessTable, BusinessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBusinessWith applies the HasEdge predicate on the "business" edge with a given conditions (other predicates).
func HasBusinessWith(preds ...predicate.Business) predicate.BusinessSettings {
	return predicate.BusinessSettings(func(s *sql.Selector) {
		step := newBusinessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessSettings) predicate.BusinessSettings {
	return predicate.BusinessSettings(sql.NotPredicates(p))
}
