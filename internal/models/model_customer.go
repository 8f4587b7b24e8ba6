package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/veloweb/subman/pkg/types"
)

// Customer is a billed subscriber. Customers are never physically deleted;
// deactivation flips Active and records DeactivationDate, reactivation clears
// it and refreshes ActivationDate.
type Customer struct {
	ID               string                                 `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Name             string                                 `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email            string                                 `gorm:"column:email;type:varchar(255);not null" json:"email"`
	SubscriptionType types.SubscriptionPlan                 `gorm:"column:subscription_type;type:varchar(64);not null" json:"subscription_type"`
	PaymentFrequency types.PaymentFrequency                 `gorm:"column:payment_frequency;type:varchar(32);not null" json:"payment_frequency"`
	Amount           float64                                `gorm:"column:amount;not null" json:"amount"`
	StripeLink       string                                 `gorm:"column:stripe_link;type:text" json:"stripe_link"`
	CRMLink          string                                 `gorm:"column:crm_link;type:text" json:"crm_link"`
	SalesTeam        types.SalesTeam                        `gorm:"column:sales_team;type:varchar(16);not null;index" json:"sales_team"`
	IsLuxury         bool                                   `gorm:"column:is_luxury;not null;default:false" json:"is_luxury"`
	Active           bool                                   `gorm:"column:active;not null;default:true;index" json:"active"`
	ActivationDate   time.Time                              `gorm:"column:activation_date;not null" json:"activation_date"`
	DeactivationDate *time.Time                             `gorm:"column:deactivation_date;default:null" json:"deactivation_date"`
	BillingInfo      datatypes.JSONType[*types.BillingInfo] `gorm:"column:billing_info;type:jsonb;default:null" json:"billing_info"`
	CreatedAt        time.Time                              `json:"created_at"`
	UpdatedAt        time.Time                              `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) GetBillingInfo() *types.BillingInfo {
	if c == nil {
		return nil
	}
	return c.BillingInfo.Data()
}
