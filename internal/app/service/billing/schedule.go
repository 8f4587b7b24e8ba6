package billing

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

// ExpectedIDPrefix marks synthetic occurrence identifiers so they can be told
// apart from persisted payment ids.
const ExpectedIDPrefix = "expected-"

// ExpectedPayment is a derived, non-persisted billing occurrence for which no
// recorded payment exists yet in its calendar month. Its ID is a
// deterministic composite of customer id and cycle month, so recomputation
// yields the same set.
type ExpectedPayment struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Amount     float64             `json:"amount"`
	Date       time.Time           `json:"date"`
	Status     types.PaymentStatus `json:"status"`
}

// ExpectedID builds the synthetic identifier for a customer's occurrence in
// the month of date.
func ExpectedID(customerID string, date time.Time) string {
	return fmt.Sprintf("%s%s-%s", ExpectedIDPrefix, customerID, date.Format("2006-01"))
}

// GenerateSchedule derives the expected occurrences for one customer from its
// activation date up to (excluding) horizon. Inactive customers yield an
// empty schedule. Months already covered by a recorded payment of the same
// customer are skipped. The walk stops past the deactivation date, and a
// oneTime frequency emits at most the activation occurrence.
//
// The result is re-derivable: identical inputs produce identical output.
func GenerateSchedule(c models.Customer, recorded []models.Payment, horizon time.Time) []ExpectedPayment {
	if !c.Active {
		return nil
	}

	byCustomer := lo.Filter(recorded, func(p models.Payment, _ int) bool {
		return p.CustomerID == c.ID
	})

	var out []ExpectedPayment
	cursor := c.ActivationDate
	for {
		if c.DeactivationDate != nil && cursor.After(*c.DeactivationDate) {
			break
		}
		if !cursor.Before(horizon) {
			break
		}

		covered := lo.SomeBy(byCustomer, func(p models.Payment) bool {
			return SameMonth(p.Date, cursor)
		})
		if !covered {
			out = append(out, ExpectedPayment{
				ID:         ExpectedID(c.ID, cursor),
				CustomerID: c.ID,
				Amount:     c.Amount,
				Date:       cursor,
				Status:     types.PaymentStatusPending,
			})
		}

		next, ok := NextBillingDate(cursor, c.PaymentFrequency)
		if !ok {
			break
		}
		cursor = next
	}
	return out
}

// GenerateAll derives the expected occurrences for every active customer.
func GenerateAll(customers []models.Customer, recorded []models.Payment, horizon time.Time) []ExpectedPayment {
	var out []ExpectedPayment
	for _, c := range customers {
		out = append(out, GenerateSchedule(c, recorded, horizon)...)
	}
	return out
}

// NextOccurrence walks the billing clock from the customer's activation date
// until it reaches a date on or after now. ok is false for oneTime customers
// whose single occurrence already passed.
func NextOccurrence(c models.Customer, now time.Time) (time.Time, bool) {
	cursor := c.ActivationDate
	for cursor.Before(now) {
		next, ok := NextBillingDate(cursor, c.PaymentFrequency)
		if !ok {
			return time.Time{}, false
		}
		cursor = next
	}
	return cursor, true
}
