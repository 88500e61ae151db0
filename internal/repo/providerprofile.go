// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/google/uuid"
)

// ProviderProfile is the model entity for the ProviderProfile schema.
type ProviderProfile struct {
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
	MemberID uuid.UUID `json:"member_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio *string `json:"bio,omitempty"`
	// Provider is visible and bookable on the customer portal
	IsAccepting bool `json:"is_accepting,omitempty"`
	// DefaultDurationMin holds the value of the "default_duration_min" field.
	DefaultDurationMin *int `json:"default_duration_min,omitempty"`
	// Override business default price; nil = use business default
	DefaultPrice *int64 `json:"default_price,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providerprofile.FieldIsAccepting:
			values[i] = new(sql.NullBool)
		case providerprofile.FieldDefaultDurationMin, providerprofile.FieldDefaultPrice:
			values[i] = new(sql.NullInt64)
		case providerprofile.FieldDisplayName, providerprofile.FieldBio:
			values[i] = new(sql.NullString)
		case providerprofile.FieldCreatedAt, providerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case providerprofile.FieldID, providerprofile.FieldBusinessID, providerprofile.FieldMemberID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderProfile fields.
func (_m *ProviderProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providerprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case providerprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case providerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case providerprofile.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case providerprofile.FieldMemberID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value != nil {
				_m.MemberID = *value
			}
		case providerprofile.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case providerprofile.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = new(string)
				*_m.Bio = value.String
			}
		case providerprofile.FieldIsAccepting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_accepting", values[i])
			} else if value.Valid {
				_m.IsAccepting = value.Bool
			}
		case providerprofile.FieldDefaultDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_duration_min", values[i])
			} else if value.Valid {
				_m.DefaultDurationMin = new(int)
				*_m.DefaultDurationMin = int(value.Int64)
			}
		case providerprofile.FieldDefaultPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_price", values[i])
			} else if value.Valid {
				_m.DefaultPrice = new(int64)
				*_m.DefaultPrice = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderProfile.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProviderProfile.
// Note that you need to call ProviderProfile.Unwrap() before calling this method if this ProviderProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderProfile) Update() *ProviderProfileUpdateOne {
	return NewProviderProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderProfile) Unwrap() *ProviderProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ProviderProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderProfile) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderProfile(")
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
	builder.WriteString("member_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberID))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.Bio; v != nil {
		builder.WriteString("bio=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_accepting=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAccepting))
	builder.WriteString(", ")
	if v := _m.DefaultDurationMin; v != nil {
		builder.WriteString("default_duration_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DefaultPrice; v != nil {
		builder.WriteString("default_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProviderProfiles is a parsable slice of ProviderProfile.
type ProviderProfiles []*ProviderProfile
