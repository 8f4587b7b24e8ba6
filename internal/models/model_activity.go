package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/veloweb/subman/pkg/types"
)

// ActivityDetails carries the type-specific payload of an activity entry.
// Each activity type populates only its own fields; use the constructors
// below rather than filling the struct directly.
type ActivityDetails struct {
	CustomerID   string               `json:"customer_id,omitempty"`
	CustomerName string               `json:"customer_name,omitempty"`
	PaymentID    string               `json:"payment_id,omitempty"`
	Amount       float64              `json:"amount,omitempty"`
	OldStatus    types.PaymentStatus  `json:"old_status,omitempty"`
	NewStatus    types.PaymentStatus  `json:"new_status,omitempty"`
	ImportCount  int                  `json:"import_count,omitempty"`
	Description  string               `json:"description,omitempty"`
}

// CustomerActivityDetails is the payload for customer_* activity types.
func CustomerActivityDetails(customerID, customerName string) *ActivityDetails {
	return &ActivityDetails{CustomerID: customerID, CustomerName: customerName}
}

// PaymentActivityDetails is the payload for payment_created/payment_confirmed.
func PaymentActivityDetails(customerID, customerName, paymentID string, amount float64) *ActivityDetails {
	return &ActivityDetails{CustomerID: customerID, CustomerName: customerName, PaymentID: paymentID, Amount: amount}
}

// PaymentStatusActivityDetails is the payload for payment_status_updated.
func PaymentStatusActivityDetails(customerID, customerName, paymentID string, amount float64, oldStatus, newStatus types.PaymentStatus) *ActivityDetails {
	return &ActivityDetails{
		CustomerID:   customerID,
		CustomerName: customerName,
		PaymentID:    paymentID,
		Amount:       amount,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
	}
}

// ImportActivityDetails is the payload for customers_imported.
func ImportActivityDetails(count int) *ActivityDetails {
	return &ActivityDetails{ImportCount: count}
}

// Activity is an append-only audit record of a user-initiated mutation.
type Activity struct {
	ID        string                                     `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Type      types.ActivityType                         `gorm:"column:type;type:varchar(64);not null;index" json:"type"`
	UserID    string                                     `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	UserName  string                                     `gorm:"column:user_name;type:varchar(255);not null" json:"user_name"`
	Timestamp time.Time                                  `gorm:"column:timestamp;not null;index:idx_activity_timestamp,sort:desc" json:"timestamp"`
	Details   datatypes.JSONType[*ActivityDetails]       `gorm:"column:details;type:jsonb;default:'{}'" json:"details"`
	CreatedAt time.Time                                  `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
