// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/danahmadi/bookora_backend/internal/repo/availabilityrule"
	"github.com/danahmadi/bookora_backend/internal/repo/booking"
	"github.com/danahmadi/bookora_backend/internal/repo/business"
	"github.com/danahmadi/bookora_backend/internal/repo/businessmember"
	"github.com/danahmadi/bookora_backend/internal/repo/businesssettings"
	"github.com/danahmadi/bookora_backend/internal/repo/charge"
	"github.com/danahmadi/bookora_backend/internal/repo/customer"
	"github.com/danahmadi/bookora_backend/internal/repo/notification"
	"github.com/danahmadi/bookora_backend/internal/repo/providerprofile"
	"github.com/danahmadi/bookora_backend/internal/repo/serviceoffering"
	"github.com/danahmadi/bookora_backend/internal/repo/user"
	"github.com/danahmadi/bookora_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	availabilityruleMixin := schema.AvailabilityRule{}.Mixin()
	availabilityruleMixinFields0 := availabilityruleMixin[0].Fields()
	_ = availabilityruleMixinFields0
	availabilityruleMixinFields1 := availabilityruleMixin[1].Fields()
	_ = availabilityruleMixinFields1
	availabilityruleFields := schema.AvailabilityRule{}.Fields()
	_ = availabilityruleFields
	// availabilityruleDescCreatedAt is the schema descriptor for created_at field.
	availabilityruleDescCreatedAt := availabilityruleMixinFields1[0].Descriptor()
	// availabilityrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	availabilityrule.DefaultCreatedAt = availabilityruleDescCreatedAt.Default.(func() time.Time)
	// availabilityruleDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityruleDescUpdatedAt := availabilityruleMixinFields1[1].Descriptor()
	// availabilityrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availabilityrule.DefaultUpdatedAt = availabilityruleDescUpdatedAt.Default.(func() time.Time)
	// availabilityrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availabilityrule.UpdateDefaultUpdatedAt = availabilityruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityruleDescDayOfWeek is the schema descriptor for day_of_week field.
	availabilityruleDescDayOfWeek := availabilityruleFields[2].Descriptor()
	// availabilityrule.DayOfWeekValidator is a validator for the "day_of_week" field. It is called by the builders before save.
	availabilityrule.DayOfWeekValidator = func() func(int8) error {
		validators := availabilityruleDescDayOfWeek.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day_of_week int8) error {
			for _, fn := range fns {
				if err := fn(day_of_week); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityruleDescStartTime is the schema descriptor for start_time field.
	availabilityruleDescStartTime := availabilityruleFields[3].Descriptor()
	// availabilityrule.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	availabilityrule.StartTimeValidator = availabilityruleDescStartTime.Validators[0].(func(string) error)
	// availabilityruleDescEndTime is the schema descriptor for end_time field.
	availabilityruleDescEndTime := availabilityruleFields[4].Descriptor()
	// availabilityrule.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	availabilityrule.EndTimeValidator = availabilityruleDescEndTime.Validators[0].(func(string) error)
	// availabilityruleDescIsAvailable is the schema descriptor for is_available field.
	availabilityruleDescIsAvailable := availabilityruleFields[5].Descriptor()
	// availabilityrule.DefaultIsAvailable holds the default value on creation for the is_available field.
	availabilityrule.DefaultIsAvailable = availabilityruleDescIsAvailable.Default.(bool)
	// availabilityruleDescEffectiveDate is the schema descriptor for effective_date field.
	availabilityruleDescEffectiveDate := availabilityruleFields[6].Descriptor()
	// availabilityrule.EffectiveDateValidator is a validator for the "effective_date" field. It is called by the builders before save.
	availabilityrule.EffectiveDateValidator = availabilityruleDescEffectiveDate.Validators[0].(func(string) error)
	// availabilityruleDescExpiryDate is the schema descriptor for expiry_date field.
	availabilityruleDescExpiryDate := availabilityruleFields[7].Descriptor()
	// availabilityrule.ExpiryDateValidator is a validator for the "expiry_date" field. It is called by the builders before save.
	availabilityrule.ExpiryDateValidator = availabilityruleDescExpiryDate.Validators[0].(func(string) error)
	// availabilityruleDescID is the schema descriptor for id field.
	availabilityruleDescID := availabilityruleMixinFields0[0].Descriptor()
	// availabilityrule.DefaultID holds the default value on creation for the id field.
	availabilityrule.DefaultID = availabilityruleDescID.Default.(func() uuid.UUID)
	bookingMixin := schema.Booking{}.Mixin()
	bookingMixinFields0 := bookingMixin[0].Fields()
	_ = bookingMixinFields0
	bookingMixinFields1 := bookingMixin[1].Fields()
	_ = bookingMixinFields1
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingMixinFields1[0].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	// bookingDescUpdatedAt is the schema descriptor for updated_at field.
	bookingDescUpdatedAt := bookingMixinFields1[1].Descriptor()
	// booking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booking.DefaultUpdatedAt = bookingDescUpdatedAt.Default.(func() time.Time)
	// booking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booking.UpdateDefaultUpdatedAt = bookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookingDescDate is the schema descriptor for date field.
	bookingDescDate := bookingFields[4].Descriptor()
	// booking.DateValidator is a validator for the "date" field. It is called by the builders before save.
	booking.DateValidator = bookingDescDate.Validators[0].(func(string) error)
	// bookingDescStartTime is the schema descriptor for start_time field.
	bookingDescStartTime := bookingFields[5].Descriptor()
	// booking.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	booking.StartTimeValidator = bookingDescStartTime.Validators[0].(func(string) error)
	// bookingDescEndTime is the schema descriptor for end_time field.
	bookingDescEndTime := bookingFields[6].Descriptor()
	// booking.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	booking.EndTimeValidator = bookingDescEndTime.Validators[0].(func(string) error)
	// bookingDescCancellationFee is the schema descriptor for cancellation_fee field.
	bookingDescCancellationFee := bookingFields[14].Descriptor()
	// booking.DefaultCancellationFee holds the default value on creation for the cancellation_fee field.
	booking.DefaultCancellationFee = bookingDescCancellationFee.Default.(int64)
	// bookingDescID is the schema descriptor for id field.
	bookingDescID := bookingMixinFields0[0].Descriptor()
	// booking.DefaultID holds the default value on creation for the id field.
	booking.DefaultID = bookingDescID.Default.(func() uuid.UUID)
	businessMixin := schema.Business{}.Mixin()
	businessMixinFields0 := businessMixin[0].Fields()
	_ = businessMixinFields0
	businessMixinFields1 := businessMixin[1].Fields()
	_ = businessMixinFields1
	businessFields := schema.Business{}.Fields()
	_ = businessFields
	// businessDescCreatedAt is the schema descriptor for created_at field.
	businessDescCreatedAt := businessMixinFields1[0].Descriptor()
	// business.DefaultCreatedAt holds the default value on creation for the created_at field.
	business.DefaultCreatedAt = businessDescCreatedAt.Default.(func() time.Time)
	// businessDescUpdatedAt is the schema descriptor for updated_at field.
	businessDescUpdatedAt := businessMixinFields1[1].Descriptor()
	// business.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	business.DefaultUpdatedAt = businessDescUpdatedAt.Default.(func() time.Time)
	// business.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	business.UpdateDefaultUpdatedAt = businessDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessDescName is the schema descriptor for name field.
	businessDescName := businessFields[0].Descriptor()
	// business.NameValidator is a validator for the "name" field. It is called by the builders before save.
	business.NameValidator = func() func(string) error {
		validators := businessDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// businessDescSlug is the schema descriptor for slug field.
	businessDescSlug := businessFields[1].Descriptor()
	// business.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	business.SlugValidator = func() func(string) error {
		validators := businessDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// businessDescPhone is the schema descriptor for phone field.
	businessDescPhone := businessFields[3].Descriptor()
	// business.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	business.PhoneValidator = businessDescPhone.Validators[0].(func(string) error)
	// businessDescCity is the schema descriptor for city field.
	businessDescCity := businessFields[5].Descriptor()
	// business.CityValidator is a validator for the "city" field. It is called by the builders before save.
	business.CityValidator = businessDescCity.Validators[0].(func(string) error)
	// businessDescTimezone is the schema descriptor for timezone field.
	businessDescTimezone := businessFields[6].Descriptor()
	// business.DefaultTimezone holds the default value on creation for the timezone field.
	business.DefaultTimezone = businessDescTimezone.Default.(string)
	// business.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	business.TimezoneValidator = businessDescTimezone.Validators[0].(func(string) error)
	// businessDescIsActive is the schema descriptor for is_active field.
	businessDescIsActive := businessFields[7].Descriptor()
	// business.DefaultIsActive holds the default value on creation for the is_active field.
	business.DefaultIsActive = businessDescIsActive.Default.(bool)
	// businessDescID is the schema descriptor for id field.
	businessDescID := businessMixinFields0[0].Descriptor()
	// business.DefaultID holds the default value on creation for the id field.
	business.DefaultID = businessDescID.Default.(func() uuid.UUID)
	businessmemberMixin := schema.BusinessMember{}.Mixin()
	businessmemberMixinFields0 := businessmemberMixin[0].Fields()
	_ = businessmemberMixinFields0
	businessmemberFields := schema.BusinessMember{}.Fields()
	_ = businessmemberFields
	// businessmemberDescIsActive is the schema descriptor for is_active field.
	businessmemberDescIsActive := businessmemberFields[3].Descriptor()
	// businessmember.DefaultIsActive holds the default value on creation for the is_active field.
	businessmember.DefaultIsActive = businessmemberDescIsActive.Default.(bool)
	// businessmemberDescJoinedAt is the schema descriptor for joined_at field.
	businessmemberDescJoinedAt := businessmemberFields[4].Descriptor()
	// businessmember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	businessmember.DefaultJoinedAt = businessmemberDescJoinedAt.Default.(func() time.Time)
	// businessmemberDescID is the schema descriptor for id field.
	businessmemberDescID := businessmemberMixinFields0[0].Descriptor()
	// businessmember.DefaultID holds the default value on creation for the id field.
	businessmember.DefaultID = businessmemberDescID.Default.(func() uuid.UUID)
	businesssettingsMixin := schema.BusinessSettings{}.Mixin()
	businesssettingsMixinFields0 := businesssettingsMixin[0].Fields()
	_ = businesssettingsMixinFields0
	businesssettingsMixinFields1 := businesssettingsMixin[1].Fields()
	_ = businesssettingsMixinFields1
	businesssettingsFields := schema.BusinessSettings{}.Fields()
	_ = businesssettingsFields
	// businesssettingsDescCreatedAt is the schema descriptor for created_at field.
	businesssettingsDescCreatedAt := businesssettingsMixinFields1[0].Descriptor()
	// businesssettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	businesssettings.DefaultCreatedAt = businesssettingsDescCreatedAt.Default.(func() time.Time)
	// businesssettingsDescUpdatedAt is the schema descriptor for updated_at field.
	businesssettingsDescUpdatedAt := businesssettingsMixinFields1[1].Descriptor()
	// businesssettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businesssettings.DefaultUpdatedAt = businesssettingsDescUpdatedAt.Default.(func() time.Time)
	// businesssettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businesssettings.UpdateDefaultUpdatedAt = businesssettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businesssettingsDescCancellationWindowHours is the schema descriptor for cancellation_window_hours field.
	businesssettingsDescCancellationWindowHours := businesssettingsFields[1].Descriptor()
	// businesssettings.DefaultCancellationWindowHours holds the default value on creation for the cancellation_window_hours field.
	businesssettings.DefaultCancellationWindowHours = businesssettingsDescCancellationWindowHours.Default.(int)
	// businesssettingsDescCancellationFeeAmount is the schema descriptor for cancellation_fee_amount field.
	businesssettingsDescCancellationFeeAmount := businesssettingsFields[2].Descriptor()
	// businesssettings.DefaultCancellationFeeAmount holds the default value on creation for the cancellation_fee_amount field.
	businesssettings.DefaultCancellationFeeAmount = businesssettingsDescCancellationFeeAmount.Default.(int64)
	// businesssettingsDescAllowCustomerSelfBook is the schema descriptor for allow_customer_self_book field.
	businesssettingsDescAllowCustomerSelfBook := businesssettingsFields[3].Descriptor()
	// businesssettings.DefaultAllowCustomerSelfBook holds the default value on creation for the allow_customer_self_book field.
	businesssettings.DefaultAllowCustomerSelfBook = businesssettingsDescAllowCustomerSelfBook.Default.(bool)
	// businesssettingsDescDefaultDurationMin is the schema descriptor for default_duration_min field.
	businesssettingsDescDefaultDurationMin := businesssettingsFields[4].Descriptor()
	// businesssettings.DefaultDefaultDurationMin holds the default value on creation for the default_duration_min field.
	businesssettings.DefaultDefaultDurationMin = businesssettingsDescDefaultDurationMin.Default.(int)
	// businesssettingsDescDefaultPrice is the schema descriptor for default_price field.
	businesssettingsDescDefaultPrice := businesssettingsFields[5].Descriptor()
	// businesssettings.DefaultDefaultPrice holds the default value on creation for the default_price field.
	businesssettings.DefaultDefaultPrice = businesssettingsDescDefaultPrice.Default.(int64)
	// businesssettingsDescID is the schema descriptor for id field.
	businesssettingsDescID := businesssettingsMixinFields0[0].Descriptor()
	// businesssettings.DefaultID holds the default value on creation for the id field.
	businesssettings.DefaultID = businesssettingsDescID.Default.(func() uuid.UUID)
	chargeMixin := schema.Charge{}.Mixin()
	chargeMixinFields0 := chargeMixin[0].Fields()
	_ = chargeMixinFields0
	chargeMixinFields1 := chargeMixin[1].Fields()
	_ = chargeMixinFields1
	chargeFields := schema.Charge{}.Fields()
	_ = chargeFields
	// chargeDescCreatedAt is the schema descriptor for created_at field.
	chargeDescCreatedAt := chargeMixinFields1[0].Descriptor()
	// charge.DefaultCreatedAt holds the default value on creation for the created_at field.
	charge.DefaultCreatedAt = chargeDescCreatedAt.Default.(func() time.Time)
	// chargeDescUpdatedAt is the schema descriptor for updated_at field.
	chargeDescUpdatedAt := chargeMixinFields1[1].Descriptor()
	// charge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	charge.DefaultUpdatedAt = chargeDescUpdatedAt.Default.(func() time.Time)
	// charge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	charge.UpdateDefaultUpdatedAt = chargeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chargeDescAmount is the schema descriptor for amount field.
	chargeDescAmount := chargeFields[2].Descriptor()
	// charge.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	charge.AmountValidator = chargeDescAmount.Validators[0].(func(int64) error)
	// chargeDescCurrency is the schema descriptor for currency field.
	chargeDescCurrency := chargeFields[3].Descriptor()
	// charge.DefaultCurrency holds the default value on creation for the currency field.
	charge.DefaultCurrency = chargeDescCurrency.Default.(string)
	// charge.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	charge.CurrencyValidator = chargeDescCurrency.Validators[0].(func(string) error)
	// chargeDescPaymentLinkURL is the schema descriptor for payment_link_url field.
	chargeDescPaymentLinkURL := chargeFields[5].Descriptor()
	// charge.PaymentLinkURLValidator is a validator for the "payment_link_url" field. It is called by the builders before save.
	charge.PaymentLinkURLValidator = chargeDescPaymentLinkURL.Validators[0].(func(string) error)
	// chargeDescGatewayReference is the schema descriptor for gateway_reference field.
	chargeDescGatewayReference := chargeFields[6].Descriptor()
	// charge.GatewayReferenceValidator is a validator for the "gateway_reference" field. It is called by the builders before save.
	charge.GatewayReferenceValidator = chargeDescGatewayReference.Validators[0].(func(string) error)
	// chargeDescID is the schema descriptor for id field.
	chargeDescID := chargeMixinFields0[0].Descriptor()
	// charge.DefaultID holds the default value on creation for the id field.
	charge.DefaultID = chargeDescID.Default.(func() uuid.UUID)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerMixinFields1 := customerMixin[1].Fields()
	_ = customerMixinFields1
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields1[0].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields1[1].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescFirstName is the schema descriptor for first_name field.
	customerDescFirstName := customerFields[2].Descriptor()
	// customer.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	customer.FirstNameValidator = func() func(string) error {
		validators := customerDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customerDescLastName is the schema descriptor for last_name field.
	customerDescLastName := customerFields[3].Descriptor()
	// customer.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	customer.LastNameValidator = customerDescLastName.Validators[0].(func(string) error)
	// customerDescPhone is the schema descriptor for phone field.
	customerDescPhone := customerFields[4].Descriptor()
	// customer.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	customer.PhoneValidator = customerDescPhone.Validators[0].(func(string) error)
	// customerDescEmail is the schema descriptor for email field.
	customerDescEmail := customerFields[5].Descriptor()
	// customer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	customer.EmailValidator = customerDescEmail.Validators[0].(func(string) error)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerMixinFields0[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = func() func(string) error {
		validators := notificationDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescData is the schema descriptor for data field.
	notificationDescData := notificationFields[3].Descriptor()
	// notification.DefaultData holds the default value on creation for the data field.
	notification.DefaultData = notificationDescData.Default.(map[string]interface{})
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[4].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	providerprofileMixin := schema.ProviderProfile{}.Mixin()
	providerprofileMixinFields0 := providerprofileMixin[0].Fields()
	_ = providerprofileMixinFields0
	providerprofileMixinFields1 := providerprofileMixin[1].Fields()
	_ = providerprofileMixinFields1
	providerprofileFields := schema.ProviderProfile{}.Fields()
	_ = providerprofileFields
	// providerprofileDescCreatedAt is the schema descriptor for created_at field.
	providerprofileDescCreatedAt := providerprofileMixinFields1[0].Descriptor()
	// providerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerprofile.DefaultCreatedAt = providerprofileDescCreatedAt.Default.(func() time.Time)
	// providerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	providerprofileDescUpdatedAt := providerprofileMixinFields1[1].Descriptor()
	// providerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	providerprofile.DefaultUpdatedAt = providerprofileDescUpdatedAt.Default.(func() time.Time)
	// providerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	providerprofile.UpdateDefaultUpdatedAt = providerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// providerprofileDescDisplayName is the schema descriptor for display_name field.
	providerprofileDescDisplayName := providerprofileFields[2].Descriptor()
	// providerprofile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	providerprofile.DisplayNameValidator = func() func(string) error {
		validators := providerprofileDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// providerprofileDescIsAccepting is the schema descriptor for is_accepting field.
	providerprofileDescIsAccepting := providerprofileFields[4].Descriptor()
	// providerprofile.DefaultIsAccepting holds the default value on creation for the is_accepting field.
	providerprofile.DefaultIsAccepting = providerprofileDescIsAccepting.Default.(bool)
	// providerprofileDescID is the schema descriptor for id field.
	providerprofileDescID := providerprofileMixinFields0[0].Descriptor()
	// providerprofile.DefaultID holds the default value on creation for the id field.
	providerprofile.DefaultID = providerprofileDescID.Default.(func() uuid.UUID)
	serviceofferingMixin := schema.ServiceOffering{}.Mixin()
	serviceofferingMixinFields0 := serviceofferingMixin[0].Fields()
	_ = serviceofferingMixinFields0
	serviceofferingMixinFields1 := serviceofferingMixin[1].Fields()
	_ = serviceofferingMixinFields1
	serviceofferingFields := schema.ServiceOffering{}.Fields()
	_ = serviceofferingFields
	// serviceofferingDescCreatedAt is the schema descriptor for created_at field.
	serviceofferingDescCreatedAt := serviceofferingMixinFields1[0].Descriptor()
	// serviceoffering.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceoffering.DefaultCreatedAt = serviceofferingDescCreatedAt.Default.(func() time.Time)
	// serviceofferingDescUpdatedAt is the schema descriptor for updated_at field.
	serviceofferingDescUpdatedAt := serviceofferingMixinFields1[1].Descriptor()
	// serviceoffering.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	serviceoffering.DefaultUpdatedAt = serviceofferingDescUpdatedAt.Default.(func() time.Time)
	// serviceoffering.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	serviceoffering.UpdateDefaultUpdatedAt = serviceofferingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceofferingDescName is the schema descriptor for name field.
	serviceofferingDescName := serviceofferingFields[1].Descriptor()
	// serviceoffering.NameValidator is a validator for the "name" field. It is called by the builders before save.
	serviceoffering.NameValidator = func() func(string) error {
		validators := serviceofferingDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceofferingDescDurationMin is the schema descriptor for duration_min field.
	serviceofferingDescDurationMin := serviceofferingFields[3].Descriptor()
	// serviceoffering.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	serviceoffering.DurationMinValidator = serviceofferingDescDurationMin.Validators[0].(func(int) error)
	// serviceofferingDescPrice is the schema descriptor for price field.
	serviceofferingDescPrice := serviceofferingFields[4].Descriptor()
	// serviceoffering.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	serviceoffering.PriceValidator = serviceofferingDescPrice.Validators[0].(func(int64) error)
	// serviceofferingDescIsActive is the schema descriptor for is_active field.
	serviceofferingDescIsActive := serviceofferingFields[5].Descriptor()
	// serviceoffering.DefaultIsActive holds the default value on creation for the is_active field.
	serviceoffering.DefaultIsActive = serviceofferingDescIsActive.Default.(bool)
	// serviceofferingDescID is the schema descriptor for id field.
	serviceofferingDescID := serviceofferingMixinFields0[0].Descriptor()
	// serviceoffering.DefaultID holds the default value on creation for the id field.
	serviceoffering.DefaultID = serviceofferingDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[6].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[8].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
