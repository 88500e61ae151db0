// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	"github.com/google/uuid"
)

// BusinessSettings is the model entity for the BusinessSettings schema.
type BusinessSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → businesses.id
	BusinessID uuid.UUID `json:"business_id,omitempty"`
	// Hours before a booking when free cancellation is allowed
	CancellationWindowHours int `json:"cancellation_window_hours,omitempty"`
	// CancellationFeeAmount holds the value of the "cancellation_fee_amount" field.
	CancellationFeeAmount int64 `json:"cancellation_fee_amount,omitempty"`
	// Customers can book slots without staff intervention
	AllowCustomerSelfBook bool `json:"allow_customer_self_book,omitempty"`
	// DefaultDurationMin holds the value of the "default_duration_min" field.
	DefaultDurationMin int `json:"default_duration_min,omitempty"`
	// Default service price in minor currency units; offerings override
	DefaultPrice int64 `json:"default_price,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessSettingsQuery when eager-loading is set.
	Edges        BusinessSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessSettingsEdges holds the relations/edges for other nodes in the graph.
type BusinessSettingsEdges struct {
	// Business holds the value of the business edge.
	Business *Business `json:"business,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessSettingsEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businesssettings.FieldAllowCustomerSelfBook:
			values[i] = new(sql.NullBool)
		case businesssettings.FieldCancellationWindowHours, businesssettings.FieldCancellationFeeAmount, businesssettings.FieldDefaultDurationMin, businesssettings.FieldDefaultPrice:
			values[i] = new(sql.NullInt64)
		case businesssettings.FieldCreatedAt, businesssettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case businesssettings.FieldID, businesssettings.FieldBusinessID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessSettings fields.
func (_m *BusinessSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businesssettings.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businesssettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businesssettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case businesssettings.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case businesssettings.FieldCancellationWindowHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_window_hours", values[i])
			} else if value.Valid {
				_m.CancellationWindowHours = int(value.Int64)
			}
		case businesssettings.FieldCancellationFeeAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_fee_amount", values[i])
			} else if value.Valid {
				_m.CancellationFeeAmount = value.Int64
			}
		case businesssettings.FieldAllowCustomerSelfBook:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_customer_self_book", values[i])
			} else if value.Valid {
				_m.AllowCustomerSelfBook = value.Bool
			}
		case businesssettings.FieldDefaultDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_duration_min", values[i])
			} else if value.Valid {
				_m.DefaultDurationMin = int(value.Int64)
			}
		case businesssettings.FieldDefaultPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_price", values[i])
			} else if value.Valid {
				_m.DefaultPrice = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessSettings.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the BusinessSettings entity.
func (_m *BusinessSettings) QueryBusiness() *BusinessQuery {
	return NewBusinessSettingsClient(_m.config).QueryBusiness(_m)
}

// Update returns a builder for updating this BusinessSettings.
// Note that you need to call BusinessSettings.Unwrap() before calling this method if this BusinessSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessSettings) Update() *BusinessSettingsUpdateOne {
	return NewBusinessSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessSettings) Unwrap() *BusinessSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BusinessSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessSettings) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("cancellation_window_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancellationWindowHours))
	builder.WriteString(", ")
	builder.WriteString("cancellation_fee_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancellationFeeAmount))
	builder.WriteString(", ")
	builder.WriteString("allow_customer_self_book=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowCustomerSelfBook))
	builder.WriteString(", ")
	builder.WriteString("default_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultDurationMin))
	builder.WriteString(", ")
	builder.WriteString("default_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultPrice))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessSettingsSlice is a parsable slice of BusinessSettings.
type BusinessSettingsSlice []*BusinessSettings
