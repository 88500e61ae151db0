package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is an entry in a user's in-app notification feed.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("type").
			MaxLen(64).
			NotEmpty().
			Comment("e.g. booking_created, booking_cancelled, charge_paid"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.JSON("data", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Bool("is_read").Default(false),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_read"),
	}
}
