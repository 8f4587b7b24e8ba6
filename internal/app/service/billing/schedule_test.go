package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

func monthlyCustomer(id string, activation time.Time) models.Customer {
	return models.Customer{
		ID:               id,
		Name:             "Acme",
		Email:            "acme@example.com",
		PaymentFrequency: types.PaymentFrequencyMonthly,
		Amount:           50,
		Active:           true,
		ActivationDate:   activation,
	}
}

func TestGenerateSchedule_MonthlyFillsHorizon(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	horizon := date(2025, time.January, 15)

	out := GenerateSchedule(c, nil, horizon)
	require.Len(t, out, 12)
	require.Equal(t, date(2024, time.January, 15), out[0].Date)
	require.Equal(t, date(2024, time.December, 15), out[11].Date)
	for _, e := range out {
		require.Equal(t, "c1", e.CustomerID)
		require.Equal(t, 50.0, e.Amount)
		require.Equal(t, types.PaymentStatusPending, e.Status)
	}
}

func TestGenerateSchedule_SkipsMonthsWithRecordedPayment(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	recorded := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 50, Date: date(2024, time.February, 20), Status: types.PaymentStatusConfirmed},
	}

	out := GenerateSchedule(c, recorded, date(2024, time.May, 1))
	require.Len(t, out, 3)
	for _, e := range out {
		require.NotEqual(t, time.February, e.Date.Month())
	}
}

func TestGenerateSchedule_OtherCustomersPaymentsDoNotCover(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	recorded := []models.Payment{
		{ID: "p1", CustomerID: "c2", Amount: 50, Date: date(2024, time.February, 20), Status: types.PaymentStatusConfirmed},
	}

	out := GenerateSchedule(c, recorded, date(2024, time.April, 1))
	require.Len(t, out, 3)
}

func TestGenerateSchedule_StopsAfterDeactivation(t *testing.T) {
	deact := date(2024, time.February, 10)
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	c.DeactivationDate = &deact

	out := GenerateSchedule(c, nil, date(2025, time.January, 1))
	require.Len(t, out, 1)
	require.Equal(t, date(2024, time.January, 15), out[0].Date)
}

func TestGenerateSchedule_InactiveCustomerYieldsNothing(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	c.Active = false

	require.Empty(t, GenerateSchedule(c, nil, date(2025, time.January, 1)))
}

func TestGenerateSchedule_ActivationBeyondHorizonYieldsNothing(t *testing.T) {
	c := monthlyCustomer("c1", date(2025, time.June, 1))

	require.Empty(t, GenerateSchedule(c, nil, date(2025, time.January, 1)))
}

func TestGenerateSchedule_OneTimeEmitsSingleOccurrence(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	c.PaymentFrequency = types.PaymentFrequencyOneTime

	out := GenerateSchedule(c, nil, date(2025, time.January, 1))
	require.Len(t, out, 1)
	require.Equal(t, date(2024, time.January, 15), out[0].Date)
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 31))
	recorded := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 50, Date: date(2024, time.March, 2), Status: types.PaymentStatusConfirmed},
	}
	horizon := date(2024, time.August, 1)

	first := GenerateSchedule(c, recorded, horizon)
	second := GenerateSchedule(c, recorded, horizon)
	require.Equal(t, first, second)
}

func TestExpectedID_EncodesCustomerAndMonth(t *testing.T) {
	id := ExpectedID("c1", date(2024, time.February, 29))
	require.Equal(t, "expected-c1-2024-02", id)
}

func TestGenerateAll_CombinesCustomers(t *testing.T) {
	a := monthlyCustomer("c1", date(2024, time.January, 15))
	b := monthlyCustomer("c2", date(2024, time.January, 20))
	b.Active = false

	out := GenerateAll([]models.Customer{a, b}, nil, date(2024, time.March, 1))
	require.Len(t, out, 2)
	for _, e := range out {
		require.Equal(t, "c1", e.CustomerID)
	}
}

func TestNextOccurrence_SkipsPastDates(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))

	next, ok := NextOccurrence(c, date(2024, time.March, 20))
	require.True(t, ok)
	require.Equal(t, date(2024, time.April, 15), next)
}

func TestNextOccurrence_OneTimeInPast(t *testing.T) {
	c := monthlyCustomer("c1", date(2024, time.January, 15))
	c.PaymentFrequency = types.PaymentFrequencyOneTime

	_, ok := NextOccurrence(c, date(2024, time.March, 20))
	require.False(t, ok)
}
