// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	"github.com/danahmadi/bookora_backend/internal/repo/user"
	"github.com/google/uuid"
)

// BusinessMember is the model entity for the BusinessMember schema.
type BusinessMember struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → businesses.id
	BusinessID uuid.UUID `json:"business_id,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Role of this user in the business
	Role businessmember.Role `json:"role,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// JoinedAt holds the value of the "joined_at" field.
	JoinedAt time.Time `json:"joined_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessMemberQuery when eager-loading is set.
	Edges        BusinessMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessMemberEdges holds the relations/edges for other nodes in the graph.
type BusinessMemberEdges struct {
	// Business holds the value of the business edge.
	Business *Business `json:"business,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BusinessOrErr returns the Business value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessMemberEdges) BusinessOrErr() (*Business, error) {
	if e.Business != nil {
		return e.Business, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: business.Label}
	}
	return nil, &NotLoadedError{edge: "business"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BusinessMemberEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessmember.FieldIsActive:
			values[i] = new(sql.NullBool)
		case businessmember.FieldRole:
			values[i] = new(sql.NullString)
		case businessmember.FieldJoinedAt:
			values[i] = new(sql.NullTime)
		case businessmember.FieldID, businessmember.FieldBusinessID, businessmember.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessMember fields.
func (_m *BusinessMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessmember.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businessmember.FieldBusinessID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field business_id", values[i])
			} else if value != nil {
				_m.BusinessID = *value
			}
		case businessmember.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case businessmember.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = businessmember.Role(value.String)
			}
		case businessmember.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case businessmember.FieldJoinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field joined_at", values[i])
			} else if value.Valid {
				_m.JoinedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessMember.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBusiness queries the "business" edge of the BusinessMember entity.
func (_m *BusinessMember) QueryBusiness() *BusinessQuery {
	return NewBusinessMemberClient(_m.config).QueryBusiness(_m)
}

// QueryUser queries the "user" edge of the BusinessMember entity.
func (_m *BusinessMember) QueryUser() *UserQuery {
	return NewBusinessMemberClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this BusinessMember.
// Note that you need to call BusinessMember.Unwrap() before calling this method if this BusinessMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessMember) Update() *BusinessMemberUpdateOne {
	return NewBusinessMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessMember) Unwrap() *BusinessMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BusinessMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessMember) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("business_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("joined_at=")
	builder.WriteString(_m.JoinedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessMembers is a parsable slice of BusinessMember.
type BusinessMembers []*BusinessMember
