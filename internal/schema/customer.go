package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Customer is a per-business customer record. A customer may or may not be a
// platform user; walk-ins created by staff have no user_id.
type Customer struct {
	ent.Schema
}

func (Customer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id when the customer has a portal account"),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 normalized at the write boundary"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id"),
		index.Fields("business_id", "phone"),
	}
}
