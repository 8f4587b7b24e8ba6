package notification

import (
	"fmt"
	"sort"
	"time"

	"github.com/veloweb/subman/internal/app/service/billing"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

type Type string

const (
	TypeUpcomingPayment     Type = "upcoming_payment"
	TypePaymentProblem      Type = "payment_problem"
	TypeCustomerDeactivated Type = "customer_deactivated"
)

// Notification is a derived alert for the operator. Type selects which of
// the optional fields are populated: DaysUntil only for upcoming payments,
// PaymentID only for payment problems.
type Notification struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Customer  models.Customer `json:"customer"`
	Date      time.Time       `json:"date"`
	Amount    float64         `json:"amount"`
	DaysUntil int             `json:"days_until,omitempty"`
	PaymentID string          `json:"payment_id,omitempty"`
}

// Derive flags payments due within lookaheadDays, payments in problem status,
// and customers deactivated within the past lookbackDays. The result is
// sorted by date descending; entries with equal dates keep insertion order.
func Derive(customers []models.Customer, payments []models.Payment, now time.Time, lookaheadDays, lookbackDays int) []Notification {
	var out []Notification

	deadline := now.AddDate(0, 0, lookaheadDays)
	for _, c := range customers {
		if !c.Active {
			continue
		}
		next, ok := billing.NextOccurrence(c, now)
		if !ok {
			continue
		}
		if next.Before(now) || next.After(deadline) {
			continue
		}
		out = append(out, Notification{
			ID:        fmt.Sprintf("payment-%s-%s", c.ID, next.Format(time.DateOnly)),
			Type:      TypeUpcomingPayment,
			Customer:  c,
			Date:      next,
			Amount:    c.Amount,
			DaysUntil: int(next.Sub(now).Hours() / 24),
		})
	}

	customerByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	for _, p := range payments {
		if p.Status != types.PaymentStatusProblem {
			continue
		}
		c, ok := customerByID[p.CustomerID]
		if !ok {
			continue
		}
		out = append(out, Notification{
			ID:        fmt.Sprintf("problem-%s", p.ID),
			Type:      TypePaymentProblem,
			Customer:  c,
			Date:      p.Date,
			Amount:    p.Amount,
			PaymentID: p.ID,
		})
	}

	cutoff := now.AddDate(0, 0, -lookbackDays)
	for _, c := range customers {
		if c.Active || c.DeactivationDate == nil {
			continue
		}
		d := *c.DeactivationDate
		if d.Before(cutoff) || d.After(now) {
			continue
		}
		out = append(out, Notification{
			ID:       fmt.Sprintf("deactivated-%s", c.ID),
			Type:     TypeCustomerDeactivated,
			Customer: c,
			Date:     d,
			Amount:   c.Amount,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
