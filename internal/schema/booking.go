package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Booking is a confirmed session between a provider and a customer.
type Booking struct {
	ent.Schema
}

func (Booking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → business_members.id"),

		field.UUID("customer_id", uuid.UUID{}).
			Comment("FK → customers.id"),

		field.UUID("service_offering_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Snapshot ref to service_offerings.id (nullable non-FK)"),

		field.String("date").
			MaxLen(10).
			Comment(`Calendar date "YYYY-MM-DD" of the booking`),

		field.String("start_time").
			MaxLen(5),

		field.String("end_time").
			MaxLen(5),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Int64("price").
			Comment("Snapshotted price in minor currency units"),

		field.Enum("payment_status").
			Values("unpaid", "link_sent", "paid", "refunded").
			Default("unpaid"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Enum("cancel_requested_by").
			Values("customer", "provider", "business").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Int64("cancellation_fee").
			Default(0),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "provider_id", "date"),
		index.Fields("business_id", "customer_id"),
		index.Fields("provider_id", "status", "date"),
	}
}
