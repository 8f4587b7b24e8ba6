package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veloweb/subman/internal/app/service/billing"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeMonthlyStats_ConfirmedAndExpected(t *testing.T) {
	target := date(2024, time.February, 1)
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 100, Date: date(2024, time.February, 5), Status: types.PaymentStatusConfirmed},
	}
	expected := []billing.ExpectedPayment{
		{ID: "expected-c2-2024-02", CustomerID: "c2", Amount: 50, Date: date(2024, time.February, 15), Status: types.PaymentStatusPending},
	}

	stats := ComputeMonthlyStats(nil, payments, expected, target)
	require.Equal(t, 100.0, stats.TotalConfirmed)
	require.Equal(t, 150.0, stats.TotalExpected)
	require.Equal(t, 50.0, stats.ConfirmationRate)
}

func TestComputeMonthlyStats_IgnoresOtherMonths(t *testing.T) {
	target := date(2024, time.February, 1)
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 100, Date: date(2024, time.January, 5), Status: types.PaymentStatusConfirmed},
	}

	stats := ComputeMonthlyStats(nil, payments, nil, target)
	require.Zero(t, stats.TotalConfirmed)
	require.Zero(t, stats.TotalExpected)
	require.Zero(t, stats.ConfirmationRate)
}

func TestComputeMonthlyStats_RenewalsNeedEarlierPayment(t *testing.T) {
	target := date(2024, time.March, 1)
	payments := []models.Payment{
		{ID: "p0", CustomerID: "c1", Amount: 50, Date: date(2024, time.February, 10), Status: types.PaymentStatusConfirmed},
		{ID: "p1", CustomerID: "c1", Amount: 50, Date: date(2024, time.March, 10), Status: types.PaymentStatusConfirmed},
		{ID: "p2", CustomerID: "c2", Amount: 80, Date: date(2024, time.March, 12), Status: types.PaymentStatusConfirmed},
	}

	stats := ComputeMonthlyStats(nil, payments, nil, target)
	require.Equal(t, 1, stats.RenewalsCount)
}

func TestComputeMonthlyStats_NewCustomers(t *testing.T) {
	target := date(2024, time.March, 1)
	customers := []models.Customer{
		{ID: "c1", Amount: 50, Active: true, ActivationDate: date(2024, time.March, 3)},
		{ID: "c2", Amount: 80, Active: true, ActivationDate: date(2024, time.January, 3)},
	}

	stats := ComputeMonthlyStats(customers, nil, nil, target)
	require.Equal(t, 1, stats.NewCustomersCount)
	require.Equal(t, 50.0, stats.NewCustomersValue)
}

func TestComputeGlobalStats_ExpectedMonthlyRevenueNormalizes(t *testing.T) {
	now := date(2024, time.March, 15)
	customers := []models.Customer{
		{ID: "c1", Amount: 50, Active: true, SalesTeam: types.SalesTeamIT, PaymentFrequency: types.PaymentFrequencyMonthly},
		{ID: "c2", Amount: 1200, Active: true, SalesTeam: types.SalesTeamES, PaymentFrequency: types.PaymentFrequencyAnnual},
		{ID: "c3", Amount: 999, Active: true, SalesTeam: types.SalesTeamFR, PaymentFrequency: types.PaymentFrequencyOneTime},
	}

	stats := ComputeGlobalStats(customers, nil, now)
	require.Equal(t, 3, stats.ActiveSubscriptions)
	require.Equal(t, 150.0, stats.ExpectedMonthlyRevenue)
	require.Equal(t, 50.0, stats.SalesTeamRevenue[types.SalesTeamIT])
	require.Equal(t, 1200.0, stats.SalesTeamRevenue[types.SalesTeamES])
	require.Equal(t, 999.0, stats.SalesTeamRevenue[types.SalesTeamFR])
}

func TestComputeGlobalStats_ChurnRate(t *testing.T) {
	now := date(2024, time.March, 15)
	deactThisMonth := date(2024, time.March, 2)
	deactBefore := date(2024, time.January, 2)
	customers := []models.Customer{
		{ID: "c1", Active: true, PaymentFrequency: types.PaymentFrequencyMonthly},
		{ID: "c2", Active: true, PaymentFrequency: types.PaymentFrequencyMonthly},
		{ID: "c3", Active: false, DeactivationDate: &deactThisMonth},
		{ID: "c4", Active: false, DeactivationDate: &deactBefore},
	}

	stats := ComputeGlobalStats(customers, nil, now)
	require.Equal(t, 1, stats.DeactivatedCount)
	require.Equal(t, 50.0, stats.ChurnRate)
}

func TestComputeGlobalStats_RevenueGrowth(t *testing.T) {
	now := date(2024, time.March, 15)
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 100, Date: date(2024, time.February, 10), Status: types.PaymentStatusConfirmed},
		{ID: "p2", CustomerID: "c1", Amount: 150, Date: date(2024, time.March, 10), Status: types.PaymentStatusConfirmed},
		{ID: "p3", CustomerID: "c1", Amount: 999, Date: date(2024, time.March, 12), Status: types.PaymentStatusPending},
	}

	stats := ComputeGlobalStats(nil, payments, now)
	require.Equal(t, 150.0, stats.CurrentMonthRevenue)
	require.Equal(t, 100.0, stats.LastMonthRevenue)
	require.Equal(t, 50.0, stats.RevenueGrowth)
}

func TestComputeGlobalStats_RevenueGrowthZeroBaseline(t *testing.T) {
	now := date(2024, time.March, 15)

	stats := ComputeGlobalStats(nil, nil, now)
	require.Zero(t, stats.RevenueGrowth)

	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 150, Date: date(2024, time.March, 10), Status: types.PaymentStatusConfirmed},
	}
	stats = ComputeGlobalStats(nil, payments, now)
	require.Equal(t, 100.0, stats.RevenueGrowth)
}

func TestComputeGlobalStats_LastMonthOnMonthEnd(t *testing.T) {
	// March 31 has no Feb 31; the previous-month window must still be February.
	now := date(2024, time.March, 31)
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 100, Date: date(2024, time.February, 10), Status: types.PaymentStatusConfirmed},
	}

	stats := ComputeGlobalStats(nil, payments, now)
	require.Equal(t, 100.0, stats.LastMonthRevenue)
}

func TestComputeGlobalStats_LuxuryRevenue(t *testing.T) {
	now := date(2024, time.March, 15)
	deact := date(2024, time.March, 10)
	customers := []models.Customer{
		{ID: "c1", Active: true, IsLuxury: true, PaymentFrequency: types.PaymentFrequencyMonthly},
		{ID: "c2", Active: true, IsLuxury: false, PaymentFrequency: types.PaymentFrequencyMonthly},
		{ID: "c3", Active: false, IsLuxury: true, DeactivationDate: &deact},
	}
	payments := []models.Payment{
		{ID: "p1", CustomerID: "c1", Amount: 300, Date: date(2024, time.March, 5), Status: types.PaymentStatusConfirmed},
		{ID: "p2", CustomerID: "c2", Amount: 100, Date: date(2024, time.March, 6), Status: types.PaymentStatusConfirmed},
		{ID: "p3", CustomerID: "c3", Amount: 50, Date: date(2024, time.March, 7), Status: types.PaymentStatusConfirmed},
	}

	stats := ComputeGlobalStats(customers, payments, now)
	// Only active customers count as luxury subscribers, but revenue from a
	// just-deactivated luxury customer still attributes.
	require.Equal(t, 1, stats.LuxuryCustomersCount)
	require.Equal(t, 350.0, stats.LuxuryRevenue)
}
