package models

import (
	"time"

	"github.com/veloweb/subman/pkg/types"
)

// Payment is a recorded billing occurrence for a customer. Rows are created
// when an expected occurrence is acted upon or a payment is logged manually,
// mutated only via status changes, and never deleted.
type Payment struct {
	ID         string              `gorm:"column:id;primary_key;type:uuid;index:idx_customer_id_id,priority:2,sort:desc" json:"id"`
	CustomerID string              `gorm:"column:customer_id;type:uuid;not null;index:idx_customer_id_id,priority:1" json:"customer_id"`
	Amount     float64             `gorm:"column:amount;not null" json:"amount"`
	Date       time.Time           `gorm:"column:date;not null;index" json:"date"`
	Status     types.PaymentStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	CreatedBy  string              `gorm:"column:created_by;type:varchar(255);not null" json:"created_by"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
