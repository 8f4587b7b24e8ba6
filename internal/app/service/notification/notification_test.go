package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeMonthly(id string, activation time.Time, amount float64) models.Customer {
	return models.Customer{
		ID:               id,
		Name:             "Acme",
		PaymentFrequency: types.PaymentFrequencyMonthly,
		Amount:           amount,
		Active:           true,
		ActivationDate:   activation,
	}
}

func TestDerive_UpcomingPaymentWithinLookahead(t *testing.T) {
	now := date(2024, time.March, 10)
	customers := []models.Customer{activeMonthly("c1", date(2024, time.February, 20), 50)}

	out := Derive(customers, nil, now, 15, 7)
	require.Len(t, out, 1)
	require.Equal(t, TypeUpcomingPayment, out[0].Type)
	require.Equal(t, "payment-c1-2024-03-20", out[0].ID)
	require.Equal(t, date(2024, time.March, 20), out[0].Date)
	require.Equal(t, 10, out[0].DaysUntil)
	require.Equal(t, 50.0, out[0].Amount)
}

func TestDerive_UpcomingBeyondLookaheadExcluded(t *testing.T) {
	now := date(2024, time.March, 1)
	customers := []models.Customer{activeMonthly("c1", date(2024, time.February, 20), 50)}

	out := Derive(customers, nil, now, 15, 7)
	require.Empty(t, out)
}

func TestDerive_InactiveCustomerHasNoUpcoming(t *testing.T) {
	now := date(2024, time.March, 10)
	c := activeMonthly("c1", date(2024, time.February, 20), 50)
	c.Active = false

	out := Derive([]models.Customer{c}, nil, now, 15, 7)
	require.Empty(t, out)
}

func TestDerive_ProblemPaymentsAlwaysFlagged(t *testing.T) {
	now := date(2024, time.March, 10)
	customers := []models.Customer{activeMonthly("c1", date(2023, time.June, 1), 50)}
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 50, Date: date(2023, time.August, 1), Status: types.PaymentStatusProblem},
		{ID: "p2", CustomerID: "c1", Amount: 50, Date: date(2024, time.February, 1), Status: types.PaymentStatusConfirmed},
	}

	out := Derive(customers, payments, now, 15, 7)

	var problems []Notification
	for _, n := range out {
		if n.Type == TypePaymentProblem {
			problems = append(problems, n)
		}
	}
	require.Len(t, problems, 1)
	require.Equal(t, "problem-p1", problems[0].ID)
	require.Equal(t, "p1", problems[0].PaymentID)
}

func TestDerive_DeactivationWithinLookback(t *testing.T) {
	now := date(2024, time.March, 10)
	recent := date(2024, time.March, 6)
	old := date(2024, time.February, 1)

	c1 := activeMonthly("c1", date(2024, time.January, 1), 50)
	c1.Active = false
	c1.DeactivationDate = &recent
	c2 := activeMonthly("c2", date(2024, time.January, 1), 80)
	c2.Active = false
	c2.DeactivationDate = &old

	out := Derive([]models.Customer{c1, c2}, nil, now, 15, 7)
	require.Len(t, out, 1)
	require.Equal(t, TypeCustomerDeactivated, out[0].Type)
	require.Equal(t, "deactivated-c1", out[0].ID)
}

func TestDerive_SortedByDateDescending(t *testing.T) {
	now := date(2024, time.March, 10)
	deact := date(2024, time.March, 8)

	c1 := activeMonthly("c1", date(2024, time.February, 20), 50)
	c2 := activeMonthly("c2", date(2024, time.January, 1), 80)
	c2.Active = false
	c2.DeactivationDate = &deact
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 50, Date: date(2024, time.January, 5), Status: types.PaymentStatusProblem},
	}

	out := Derive([]models.Customer{c1, c2}, payments, now, 15, 7)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		require.False(t, out[i-1].Date.Before(out[i].Date))
	}
	require.Equal(t, TypeUpcomingPayment, out[0].Type)
	require.Equal(t, TypePaymentProblem, out[2].Type)
}
