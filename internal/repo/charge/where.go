// Code generated by ent, DO NOT EDIT.

package charge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldUpdatedAt, v))
}

// BusinessID applies equality check predicate on the "business_id" field. It's identical to BusinessIDEQ.
func BusinessID(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldBusinessID, v))
}

// BookingID applies equality check predicate on the "booking_id" field. It's identical to BookingIDEQ.
func BookingID(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldBookingID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldCurrency, v))
}

// PaymentLinkURL applies equality check predicate on the "payment_link_url" field. It's identical to PaymentLinkURLEQ.
func PaymentLinkURL(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldPaymentLinkURL, v))
}

// GatewayReference applies equality check predicate on the "gateway_reference" field. It's identical to GatewayReferenceEQ.
func GatewayReference(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldGatewayReference, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldFailureReason, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldPaidAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldUpdatedAt, v))
}

// BusinessIDEQ applies the EQ predicate on the "business_id" field.
func BusinessIDEQ(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldBusinessID, v))
}

// BusinessIDNEQ applies the NEQ predicate on the "business_id" field.
func BusinessIDNEQ(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldBusinessID, v))
}

// BusinessIDIn applies the In predicate on the "business_id" field.
func BusinessIDIn(vs ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldBusinessID, vs...))
}

// BusinessIDNotIn applies the NotIn predicate on the "business_id" field.
func BusinessIDNotIn(vs ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldBusinessID, vs...))
}

// BusinessIDGT applies the GT predicate on the "business_id" field.
func BusinessIDGT(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldBusinessID, v))
}

// BusinessIDGTE applies the GTE predicate on the "business_id" field.
func BusinessIDGTE(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldBusinessID, v))
}

// BusinessIDLT applies the LT predicate on the "business_id" field.
func BusinessIDLT(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldBusinessID, v))
}

// BusinessIDLTE applies the LTE predicate on the "business_id" field.
func BusinessIDLTE(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldBusinessID, v))
}

// BookingIDEQ applies the EQ predicate on the "booking_id" field.
func BookingIDEQ(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldBookingID, v))
}

// BookingIDNEQ applies the NEQ predicate on the "booking_id" field.
func BookingIDNEQ(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldBookingID, v))
}

// BookingIDIn applies the In predicate on the "booking_id" field.
func BookingIDIn(vs ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldBookingID, vs...))
}

// BookingIDNotIn applies the NotIn predicate on the "booking_id" field.
func BookingIDNotIn(vs ...uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldBookingID, vs...))
}

// BookingIDGT applies the GT predicate on the "booking_id" field.
func BookingIDGT(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldBookingID, v))
}

// BookingIDGTE applies the GTE predicate on the "booking_id" field.
func BookingIDGTE(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldBookingID, v))
}

// BookingIDLT applies the LT predicate on the "booking_id" field.
func BookingIDLT(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldBookingID, v))
}

// BookingIDLTE applies the LTE predicate on the "booking_id" field.
func BookingIDLTE(v uuid.UUID) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldBookingID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContainsFold(FieldCurrency, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldStatus, vs...))
}

// PaymentLinkURLEQ applies the EQ predicate on the "payment_link_url" field.
func PaymentLinkURLEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldPaymentLinkURL, v))
}

// PaymentLinkURLNEQ applies the NEQ predicate on the "payment_link_url" field.
func PaymentLinkURLNEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldPaymentLinkURL, v))
}

// PaymentLinkURLIn applies the In predicate on the "payment_link_url" field.
func PaymentLinkURLIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldPaymentLinkURL, vs...))
}

// PaymentLinkURLNotIn applies the NotIn predicate on the "payment_link_url" field.
func PaymentLinkURLNotIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldPaymentLinkURL, vs...))
}

// PaymentLinkURLGT applies the GT predicate on the "payment_link_url" field.
func PaymentLinkURLGT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldPaymentLinkURL, v))
}

// PaymentLinkURLGTE applies the GTE predicate on the "payment_link_url" field.
func PaymentLinkURLGTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldPaymentLinkURL, v))
}

// PaymentLinkURLLT applies the LT predicate on the "payment_link_url" field.
func PaymentLinkURLLT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldPaymentLinkURL, v))
}

// PaymentLinkURLLTE applies the LTE predicate on the "payment_link_url" field.
func PaymentLinkURLLTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldPaymentLinkURL, v))
}

// PaymentLinkURLContains applies the Contains predicate on the "payment_link_url" field.
func PaymentLinkURLContains(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContains(FieldPaymentLinkURL, v))
}

// PaymentLinkURLHasPrefix applies the HasPrefix predicate on the "payment_link_url" field.
func PaymentLinkURLHasPrefix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasPrefix(FieldPaymentLinkURL, v))
}

// PaymentLinkURLHasSuffix applies the HasSuffix predicate on the "payment_link_url" field.
func PaymentLinkURLHasSuffix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasSuffix(FieldPaymentLinkURL, v))
}

// PaymentLinkURLIsNil applies the IsNil predicate on the "payment_link_url" field.
func PaymentLinkURLIsNil() predicate.Charge {
	return predicate.Charge(sql.FieldIsNull(FieldPaymentLinkURL))
}

// PaymentLinkURLNotNil applies the NotNil predicate on the "payment_link_url" field.
func PaymentLinkURLNotNil() predicate.Charge {
	return predicate.Charge(sql.FieldNotNull(FieldPaymentLinkURL))
}

// PaymentLinkURLEqualFold applies the EqualFold predicate on the "payment_link_url" field.
func PaymentLinkURLEqualFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEqualFold(FieldPaymentLinkURL, v))
}

// PaymentLinkURLContainsFold applies the ContainsFold predicate on the "payment_link_url" field.
func PaymentLinkURLContainsFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContainsFold(FieldPaymentLinkURL, v))
}

// GatewayReferenceEQ applies the EQ predicate on the "gateway_reference" field.
func GatewayReferenceEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldGatewayReference, v))
}

// GatewayReferenceNEQ applies the NEQ predicate on the "gateway_reference" field.
func GatewayReferenceNEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldGatewayReference, v))
}

// GatewayReferenceIn applies the In predicate on the "gateway_reference" field.
func GatewayReferenceIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldGatewayReference, vs...))
}

// GatewayReferenceNotIn applies the NotIn predicate on the "gateway_reference" field.
func GatewayReferenceNotIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldGatewayReference, vs...))
}

// GatewayReferenceGT applies the GT predicate on the "gateway_reference" field.
func GatewayReferenceGT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldGatewayReference, v))
}

// GatewayReferenceGTE applies the GTE predicate on the "gateway_reference" field.
func GatewayReferenceGTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldGatewayReference, v))
}

// GatewayReferenceLT applies the LT predicate on the "gateway_reference" field.
func GatewayReferenceLT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldGatewayReference, v))
}

// GatewayReferenceLTE applies the LTE predicate on the "gateway_reference" field.
func GatewayReferenceLTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldGatewayReference, v))
}

// GatewayReferenceContains applies the Contains predicate on the "gateway_reference" field.
func GatewayReferenceContains(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContains(FieldGatewayReference, v))
}

// GatewayReferenceHasPrefix applies the HasPrefix predicate on the "gateway_reference" field.
func GatewayReferenceHasPrefix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasPrefix(FieldGatewayReference, v))
}

// GatewayReferenceHasSuffix applies the HasSuffix predicate on the "gateway_reference" field.
func GatewayReferenceHasSuffix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasSuffix(FieldGatewayReference, v))
}

// GatewayReferenceIsNil applies the IsNil predicate on the "gateway_reference" field.
func GatewayReferenceIsNil() predicate.Charge {
	return predicate.Charge(sql.FieldIsNull(FieldGatewayReference))
}

// GatewayReferenceNotNil applies the NotNil predicate on the "gateway_reference" field.
func GatewayReferenceNotNil() predicate.Charge {
	return predicate.Charge(sql.FieldNotNull(FieldGatewayReference))
}

// GatewayReferenceEqualFold applies the EqualFold predicate on the "gateway_reference" field.
func GatewayReferenceEqualFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEqualFold(FieldGatewayReference, v))
}

// GatewayReferenceContainsFold applies the ContainsFold predicate on the "gateway_reference" field.
func GatewayReferenceContainsFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContainsFold(FieldGatewayReference, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Charge {
	return predicate.Charge(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Charge {
	return predicate.Charge(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Charge {
	return predicate.Charge(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Charge {
	return predicate.Charge(sql.FieldContainsFold(FieldFailureReason, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.Charge {
	return predicate.Charge(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.Charge {
	return predicate.Charge(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.Charge {
	return predicate.Charge(sql.FieldNotNull(FieldPaidAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Charge) predicate.Charge {
	return predicate.Charge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Charge) predicate.Charge {
	return predicate.Charge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Charge) predicate.Charge {
	return predicate.Charge(sql.NotPredicates(p))
}
