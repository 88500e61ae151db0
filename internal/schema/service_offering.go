package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ServiceOffering is an entry in a business's service catalog (e.g. a 45-minute
// consultation or a 30-minute haircut).
type ServiceOffering struct {
	ent.Schema
}

func (ServiceOffering) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ServiceOffering) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("description").
			Optional().
			Nillable(),

		field.Int("duration_min").
			Positive(),

		field.Int64("price").
			NonNegative().
			Comment("Price in minor currency units"),

		field.Bool("is_active").Default(true),
	}
}

func (ServiceOffering) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "is_active"),
	}
}
