// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilityRulesColumns holds the columns for the "availability_rules" table.
	AvailabilityRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "effective_date", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "expiry_date", Type: field.TypeString, Nullable: true, Size: 10},
	}
	// AvailabilityRulesTable holds the schema information for the "availability_rules" table.
	AvailabilityRulesTable = &schema.Table{
		Name:       "availability_rules",
		Columns:    AvailabilityRulesColumns,
		PrimaryKey: []*schema.Column{AvailabilityRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityrule_provider_id_day_of_week_is_available",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityRulesColumns[4], AvailabilityRulesColumns[5], AvailabilityRulesColumns[8]},
			},
			{
				Name:    "availabilityrule_business_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityRulesColumns[3]},
			},
		},
	}
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "service_offering_id", Type: field.TypeUUID, Nullable: true},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "price", Type: field.TypeInt64},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"unpaid", "link_sent", "paid", "refunded"}, Default: "unpaid"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_requested_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"customer", "provider", "business"}},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_fee", Type: field.TypeInt64, Default: 0},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booking_business_id_provider_id_date",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[4], BookingsColumns[7]},
			},
			{
				Name:    "booking_business_id_customer_id",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[5]},
			},
			{
				Name:    "booking_provider_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[10], BookingsColumns[7]},
			},
		},
	}
	// BusinessesColumns holds the columns for the "businesses" table.
	BusinessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// BusinessesTable holds the schema information for the "businesses" table.
	BusinessesTable = &schema.Table{
		Name:       "businesses",
		Columns:    BusinessesColumns,
		PrimaryKey: []*schema.Column{BusinessesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "business_slug",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[5]},
			},
		},
	}
	// BusinessMembersColumns holds the columns for the "business_members" table.
	BusinessMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "provider", "assistant"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// BusinessMembersTable holds the schema information for the "business_members" table.
	BusinessMembersTable = &schema.Table{
		Name:       "business_members",
		Columns:    BusinessMembersColumns,
		PrimaryKey: []*schema.Column{BusinessMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "business_members_businesses_members",
				Columns:    []*schema.Column{BusinessMembersColumns[4]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "business_members_users_user",
				Columns:    []*schema.Column{BusinessMembersColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "businessmember_business_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{BusinessMembersColumns[4], BusinessMembersColumns[5]},
			},
			{
				Name:    "businessmember_business_id",
				Unique:  false,
				Columns: []*schema.Column{BusinessMembersColumns[4]},
			},
			{
				Name:    "businessmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{BusinessMembersColumns[5]},
			},
		},
	}
	// BusinessSettingsColumns holds the columns for the "business_settings" table.
	BusinessSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cancellation_window_hours", Type: field.TypeInt, Default: 24},
		{Name: "cancellation_fee_amount", Type: field.TypeInt64, Default: 0},
		{Name: "allow_customer_self_book", Type: field.TypeBool, Default: true},
		{Name: "default_duration_min", Type: field.TypeInt, Default: 60},
		{Name: "default_price", Type: field.TypeInt64, Default: 0},
		{Name: "business_id", Type: field.TypeUUID, Unique: true},
	}
	// BusinessSettingsTable holds the schema information for the "business_settings" table.
	BusinessSettingsTable = &schema.Table{
		Name:       "business_settings",
		Columns:    BusinessSettingsColumns,
		PrimaryKey: []*schema.Column{BusinessSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "business_settings_businesses_settings",
				Columns:    []*schema.Column{BusinessSettingsColumns[8]},
				RefColumns: []*schema.Column{BusinessesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ChargesColumns holds the columns for the "charges" table.
	ChargesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "booking_id", Type: field.TypeUUID},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "usd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "link_created", "paid", "failed"}, Default: "pending"},
		{Name: "payment_link_url", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "gateway_reference", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
	}
	// ChargesTable holds the schema information for the "charges" table.
	ChargesTable = &schema.Table{
		Name:       "charges",
		Columns:    ChargesColumns,
		PrimaryKey: []*schema.Column{ChargesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "charge_business_id_status",
				Unique:  false,
				Columns: []*schema.Column{ChargesColumns[3], ChargesColumns[7]},
			},
			{
				Name:    "charge_booking_id",
				Unique:  false,
				Columns: []*schema.Column{ChargesColumns[4]},
			},
			{
				Name:    "charge_gateway_reference",
				Unique:  false,
				Columns: []*schema.Column{ChargesColumns[9]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_business_id",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[4]},
			},
			{
				Name:    "customer_business_id_phone",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[4], CustomersColumns[8]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[6]},
			},
		},
	}
	// ProviderProfilesColumns holds the columns for the "provider_profiles" table.
	ProviderProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "member_id", Type: field.TypeUUID, Unique: true},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_accepting", Type: field.TypeBool, Default: true},
		{Name: "default_duration_min", Type: field.TypeInt, Nullable: true},
		{Name: "default_price", Type: field.TypeInt64, Nullable: true},
	}
	// ProviderProfilesTable holds the schema information for the "provider_profiles" table.
	ProviderProfilesTable = &schema.Table{
		Name:       "provider_profiles",
		Columns:    ProviderProfilesColumns,
		PrimaryKey: []*schema.Column{ProviderProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "providerprofile_business_id_is_accepting",
				Unique:  false,
				Columns: []*schema.Column{ProviderProfilesColumns[3], ProviderProfilesColumns[7]},
			},
		},
	}
	// ServiceOfferingsColumns holds the columns for the "service_offerings" table.
	ServiceOfferingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "business_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "price", Type: field.TypeInt64},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ServiceOfferingsTable holds the schema information for the "service_offerings" table.
	ServiceOfferingsTable = &schema.Table{
		Name:       "service_offerings",
		Columns:    ServiceOfferingsColumns,
		PrimaryKey: []*schema.Column{ServiceOfferingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "serviceoffering_business_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ServiceOfferingsColumns[4], ServiceOfferingsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilityRulesTable,
		BookingsTable,
		BusinessesTable,
		BusinessMembersTable,
		BusinessSettingsTable,
		ChargesTable,
		CustomersTable,
		NotificationsTable,
		ProviderProfilesTable,
		ServiceOfferingsTable,
		UsersTable,
	}
)

func init() {
	BusinessMembersTable.ForeignKeys[0].RefTable = BusinessesTable
	BusinessMembersTable.ForeignKeys[1].RefTable = UsersTable
	BusinessSettingsTable.ForeignKeys[0].RefTable = BusinessesTable
}
