package types

// PaymentFrequency is the cadence at which a customer is expected to pay.
type PaymentFrequency string

const (
	PaymentFrequencyMonthly   PaymentFrequency = "monthly"
	PaymentFrequencyQuarterly PaymentFrequency = "quarterly"
	PaymentFrequencyBiannual  PaymentFrequency = "biannual"
	PaymentFrequencyAnnual    PaymentFrequency = "annual"
	PaymentFrequencyOneTime   PaymentFrequency = "oneTime"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case PaymentFrequencyMonthly, PaymentFrequencyQuarterly, PaymentFrequencyBiannual,
		PaymentFrequencyAnnual, PaymentFrequencyOneTime:
		return true
	}
	return false
}

// MonthsPerCycle returns the number of calendar months between occurrences.
// oneTime has no recurring cycle and returns 0.
func (f PaymentFrequency) MonthsPerCycle() int {
	switch f {
	case PaymentFrequencyMonthly:
		return 1
	case PaymentFrequencyQuarterly:
		return 3
	case PaymentFrequencyBiannual:
		return 6
	case PaymentFrequencyAnnual:
		return 12
	default:
		return 0
	}
}

type PaymentStatus string

const (
	PaymentStatusConfirmed  PaymentStatus = "confirmed"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProblem    PaymentStatus = "problem"
	PaymentStatusProcessing PaymentStatus = "processing"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusConfirmed, PaymentStatusPending, PaymentStatusProblem, PaymentStatusProcessing:
		return true
	}
	return false
}

// SalesTeam identifies which regional team owns a customer relationship.
type SalesTeam string

const (
	SalesTeamIT    SalesTeam = "IT"
	SalesTeamES    SalesTeam = "ES"
	SalesTeamFR    SalesTeam = "FR"
	SalesTeamWorld SalesTeam = "WORLD"
)

func (t SalesTeam) Valid() bool {
	switch t {
	case SalesTeamIT, SalesTeamES, SalesTeamFR, SalesTeamWorld:
		return true
	}
	return false
}

// SubscriptionPlan is the commercial plan sold to a customer.
type SubscriptionPlan string

const (
	SubscriptionPlanSito1             SubscriptionPlan = "SITO_1.0"
	SubscriptionPlanSito2             SubscriptionPlan = "SITO_2.0"
	SubscriptionPlanFleetSito2        SubscriptionPlan = "FLEET_SITO_2.0"
	SubscriptionPlanFleetProSito2     SubscriptionPlan = "FLEET_PRO_SITO_2.0"
	SubscriptionPlanBookingEngine     SubscriptionPlan = "BOOKING_ENGINE"
	SubscriptionPlanFleetProBooking   SubscriptionPlan = "FLEET_PRO_BOOKING_ENGINE"
	SubscriptionPlanFleetBasicBooking SubscriptionPlan = "FLEET_BASIC_BOOKING_ENGINE"
	SubscriptionPlanFleetPro          SubscriptionPlan = "FLEET_PRO"
	SubscriptionPlanFleetBasic        SubscriptionPlan = "FLEET_BASIC"
	SubscriptionPlanPayAsYouGo        SubscriptionPlan = "PAY_AS_YOU_GO"
	SubscriptionPlanPersonalizzazioni SubscriptionPlan = "PERSONALIZZAZIONI"
	SubscriptionPlanCustom            SubscriptionPlan = "CUSTOM"
)

func (p SubscriptionPlan) Valid() bool {
	switch p {
	case SubscriptionPlanSito1, SubscriptionPlanSito2, SubscriptionPlanFleetSito2,
		SubscriptionPlanFleetProSito2, SubscriptionPlanBookingEngine,
		SubscriptionPlanFleetProBooking, SubscriptionPlanFleetBasicBooking,
		SubscriptionPlanFleetPro, SubscriptionPlanFleetBasic,
		SubscriptionPlanPayAsYouGo, SubscriptionPlanPersonalizzazioni, SubscriptionPlanCustom:
		return true
	}
	return false
}

type ActivityType string

const (
	ActivityCustomerCreated      ActivityType = "customer_created"
	ActivityCustomerUpdated      ActivityType = "customer_updated"
	ActivityCustomerDeactivated  ActivityType = "customer_deactivated"
	ActivityCustomerReactivated  ActivityType = "customer_reactivated"
	ActivityPaymentCreated       ActivityType = "payment_created"
	ActivityPaymentConfirmed     ActivityType = "payment_confirmed"
	ActivityPaymentStatusUpdated ActivityType = "payment_status_updated"
	ActivityCustomersImported    ActivityType = "customers_imported"
	ActivityUserLogin            ActivityType = "user_login"
	ActivityUserLogout           ActivityType = "user_logout"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// BillingInfo carries the invoicing details attached to a customer record.
// SDI and PEC are the Italian electronic-invoicing routing codes and are
// optional for customers billed outside Italy.
type BillingInfo struct {
	CompanyName string `json:"company_name"`
	VatNumber   string `json:"vat_number"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	SDI         string `json:"sdi,omitempty"`
	PEC         string `json:"pec,omitempty"`
}
