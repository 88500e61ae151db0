package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Charge is an invoicing record for a booking: one row per dispatched charge,
// carrying the payment link obtained from the gateway.
type Charge struct {
	ent.Schema
}

func (Charge) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Charge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("booking_id", uuid.UUID{}).
			Comment("FK → bookings.id"),

		field.Int64("amount").
			Positive().
			Comment("Amount in minor currency units, snapshotted from the booking"),

		field.String("currency").
			MaxLen(3).
			Default("usd"),

		field.Enum("status").
			Values("pending", "link_created", "paid", "failed").
			Default("pending"),

		field.String("payment_link_url").
			Optional().
			Nillable().
			MaxLen(500),

		field.String("gateway_reference").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Payment link / session id at the gateway"),

		field.String("failure_reason").
			Optional().
			Nillable(),

		field.Time("paid_at").
			Optional().
			Nillable(),
	}
}

func (Charge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("business_id", "status"),
		index.Fields("booking_id"),
		index.Fields("gateway_reference"),
	}
}
