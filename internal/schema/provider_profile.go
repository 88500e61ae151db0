package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ProviderProfile holds the provider-specific data for a business member who
// offers bookable services.
type ProviderProfile struct {
	ent.Schema
}

func (ProviderProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ProviderProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("member_id", uuid.UUID{}).
			Unique().
			Comment("FK → business_members.id"),

		field.String("display_name").
			MaxLen(255).
			NotEmpty(),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Bool("is_accepting").
			Default(true).
			Comment("Provider is visible and bookable on the customer portal"),

		field.Int("default_duration_min").
			Optional().
			Nillable(),

		field.Int64("default_price").
			Optional().
			Nillable().
			Comment("Override business default price; nil = use business default"),
	}
}

func (ProviderProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "is_accepting"),
	}
}
