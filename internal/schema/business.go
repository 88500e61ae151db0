package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Business — the tenant
// ---------------------------------------------------------------------------

type Business struct {
	ent.Schema
}

func (Business) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Business) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the business"),

		field.String("description").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("timezone").
			Default("UTC").
			MaxLen(64).
			Comment("IANA zone name; anchors the late-cancellation window. Rule matching stays date-based."),

		field.Bool("is_active").Default(true),
	}
}

func (Business) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}

func (Business) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", BusinessMember.Type),
		edge.To("settings", BusinessSettings.Type).Unique(),
	}
}

// ---------------------------------------------------------------------------
// BusinessMember — join table: user ↔ business with role
// ---------------------------------------------------------------------------

type BusinessMember struct {
	ent.Schema
}

func (BusinessMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (BusinessMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("role").
			Values("owner", "admin", "provider", "assistant").
			Comment("Role of this user in the business"),

		field.Bool("is_active").Default(true),

		field.Time("joined_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BusinessMember) Indexes() []ent.Index {
	return []ent.Index{
		// A user can only have one membership record per business
		index.Fields("business_id", "user_id").Unique(),
		index.Fields("business_id"),
		index.Fields("user_id"),
	}
}

func (BusinessMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("members").
			Unique().
			Required().
			Field("business_id"),
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}

// ---------------------------------------------------------------------------
// BusinessSettings — one-to-one with Business
// ---------------------------------------------------------------------------

type BusinessSettings struct {
	ent.Schema
}

func (BusinessSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BusinessSettings) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Unique().
			Comment("FK → businesses.id"),

		field.Int("cancellation_window_hours").Default(24).
			Comment("Hours before a booking when free cancellation is allowed"),

		field.Int64("cancellation_fee_amount").Default(0),

		field.Bool("allow_customer_self_book").Default(true).
			Comment("Customers can book slots without staff intervention"),

		field.Int("default_duration_min").Default(60),

		field.Int64("default_price").Default(0).
			Comment("Default service price in minor currency units; offerings override"),
	}
}

func (BusinessSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("business", Business.Type).
			Ref("settings").
			Unique().
			Required().
			Field("business_id"),
	}
}
