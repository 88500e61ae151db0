// Code generated by ent, DO NOT EDIT.

package businesssettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the businesssettings type in the database.
	Label = "business_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldBusinessID holds the string denoting the business_id field in the database.
	FieldBusinessID = "business_id"
	// FieldCancellationWindowHours holds the string denoting the cancellation_window_hours field in the database.
	FieldCancellationWindowHours = "cancellation_window_hours"
	// FieldCancellationFeeAmount holds the string denoting the cancellation_fee_amount field in the database.
	FieldCancellationFeeAmount = "cancellation_fee_amount"
	// FieldAllowCustomerSelfBook holds the string denoting the allow_customer_self_book field in the database.
	FieldAllowCustomerSelfBook = "allow_customer_self_book"
	// FieldDefaultDurationMin holds the string denoting the default_duration_min field in the database.
	FieldDefaultDurationMin = "default_duration_min"
	// FieldDefaultPrice holds the string denoting the default_price field in the database.
	FieldDefaultPrice = "default_price"
	// EdgeBusiness holds the string denoting the business edge name in mutations.
	EdgeBusiness = "business"
	// Table holds the table name of the businesssettings in the database.
	Table = "business_settings"
	// BusinessTable is the table that holds the business relation/edge.
	BusinessTable = "business_settings"
	// BusinessInverseTable is the table name for the Business entity.
	// It exists in this package in order to avoid circular dependency with the "business" package.
	BusinessInverseTable = "businesses"
	// BusinessColumn is the table column denoting the business relation/edge.
	BusinessColumn = "business_id"
)

// Columns holds all SQL columns for businesssettings fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldBusinessID,
	FieldCancellationWindowHours,
	FieldCancellationFeeAmount,
	FieldAllowCustomerSelfBook,
	FieldDefaultDurationMin,
	FieldDefaultPrice,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCancellationWindowHours holds the default value on creation for the "cancellation_window_hours" field.
	DefaultCancellationWindowHours int
	// DefaultCancellationFeeAmount holds the default value on creation for the "cancellation_fee_amount" field.
	DefaultCancellationFeeAmount int64
	// DefaultAllowCustomerSelfBook holds the default value on creation for the "allow_customer_self_book" field.
	DefaultAllowCustomerSelfBook bool
	// DefaultDefaultDurationMin holds the default value on creation for the "default_duration_min" field.
	DefaultDefaultDurationMin int
	// DefaultDefaultPrice holds the default value on creation for the "default_price" field.
	DefaultDefaultPrice int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BusinessSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBusinessID orders the results by the business_id field.
func ByBusinessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessID, opts...).ToFunc()
}

// ByCancellationWindowHours orders the results by the cancellation_window_hours field.
func ByCancellationWindowHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationWindowHours, opts...).ToFunc()
}

// ByCancellationFeeAmount orders the results by the cancellation_fee_amount field.
func ByCancellationFeeAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationFeeAmount, opts...).ToFunc()
}

// ByAllowCustomerSelfBook orders the results by the allow_customer_self_book field.
func ByAllowCustomerSelfBook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowCustomerSelfBook, opts...).ToFunc()
}

// ByDefaultDurationMin orders the results by the default_duration_min field.
func ByDefaultDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultDurationMin, opts...).ToFunc()
}

// ByDefaultPrice orders the results by the default_price field.
func ByDefaultPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultPrice, opts...).ToFunc()
}

// ByBusinessField orders the results by business field.
func ByBusinessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBusinessStep(), sql.OrderByField(field, opts...))
	}
}
func newBusinessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BusinessInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, BusinessTable, BusinessColumn),
	)
}
