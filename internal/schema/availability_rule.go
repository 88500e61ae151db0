package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilityRule defines a weekly availability window for a provider,
// optionally bounded to an inclusive date range.
//
// Dates are stored as zero-padded YYYY-MM-DD strings and times as HH:MM wall
// clock, never as timestamps: range checks are plain string comparisons and
// day_of_week is derived UTC-anchored, so nothing here depends on the zone of
// whoever wrote or reads the row.
type AvailabilityRule struct {
	ent.Schema
}

func (AvailabilityRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("business_id", uuid.UUID{}).
			Comment("FK → businesses.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → business_members.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Sunday … 6=Saturday, UTC-anchored derivation"),

		field.String("start_time").
			MaxLen(5).
			Comment(`Wall-clock "HH:MM"; start_time < end_time enforced at write time`),

		field.String("end_time").
			MaxLen(5),

		field.Bool("is_available").
			Default(true).
			Comment("False rules are kept but never match"),

		field.String("effective_date").
			Optional().
			Nillable().
			MaxLen(10).
			Comment(`Inclusive "YYYY-MM-DD" start bound; nil = recurs unconditionally`),

		field.String("expiry_date").
			Optional().
			Nillable().
			MaxLen(10).
			Comment("Inclusive end bound; only valid together with effective_date"),
	}
}

func (AvailabilityRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider_id", "day_of_week", "is_available"),
		index.Fields("business_id"),
	}
}
