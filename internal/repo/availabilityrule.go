// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/google/uuid"
)

// AvailabilityRule is the model entity for the AvailabilityRule schema.
type AvailabilityRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → businesses.id
	BusinessID uuid.UUID `json:"business_id,omitempty"`
	// FK → business_members.id
	ProviderID uuid.UUID `json:"provider_id,omitempty"`
	// 0=Sunday … 6=Saturday, UTC-anchored derivation
	DayOfWeek int8 `json:"day_of_week,omitempty"`
	// Wall-clock "HH:MM"; start_time < end_time enforced at write time
	StartTime string `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime string `json:"end_time,omitempty"`
	// False rules are kept but never match
	IsAvailable bool `json:"is_available,omitempty"`
	// Inclusive "YYYY-MM-DD" start bound; nil = recurs unconditionally
	EffectiveDate *string `json:"effective_date,omitempty"`
	// Inclusive end bound; only valid together with effective_date
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldIsAvailable:
			values[i] = new(sql.NullBool)
		case availabilityrule.FieldDayOfWeek:
			values[i] = new(sql.NullInt64)
		case availabilityrule.FieldStartTime, availabilityrule.FieldEndTime, availabilityrule.FieldEffectiveDate, availabilityrule.FieldExpiryDate:
			values[i] = new(sql.NullString)
		case availabilityrule.FieldCreatedAt, availabilityrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case availabilityrule.FieldID, availabilityrule.FieldBusinessID, availabilityrule.FieldProviderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityRule fields.
func (_m *AvailabilityRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityrule.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case availabilityrule.FieldProviderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field provider_id", values[i])
			} else if value != nil {
				_m.ProviderID = *value
			}
		case availabilityrule.FieldDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_of_week", values[i])
			} else if value.Valid {
				_m.DayOfWeek = int8(value.Int64)
			}
		case availabilityrule.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case availabilityrule.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case availabilityrule.FieldIsAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_available", values[i])
			} else if value.Valid {
				_m.IsAvailable = value.Bool
			}
		case availabilityrule.FieldEffectiveDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effective_date", values[i])
			} else if value.Valid {
				_m.EffectiveDate = new(string)
				*_m.EffectiveDate = value.String
			}
		case availabilityrule.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(string)
				*_m.ExpiryDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityRule.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilityRule.
// Note that you need to call AvailabilityRule.Unwrap() before calling this method if this AvailabilityRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityRule) Update() *AvailabilityRuleUpdateOne {
	return NewAvailabilityRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityRule) Unwrap() *AvailabilityRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityRule) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityRule(")
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
	builder.WriteString("provider_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderID))
	builder.WriteString(", ")
	builder.WriteString("day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("is_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAvailable))
	builder.WriteString(", ")
	if v := _m.EffectiveDate; v != nil {
		builder.WriteString("effective_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityRules is a parsable slice of AvailabilityRule.
type AvailabilityRules []*AvailabilityRule
