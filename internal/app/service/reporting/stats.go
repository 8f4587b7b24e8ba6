package reporting

import (
	"time"

	"github.com/samber/lo"

	"github.com/veloweb/subman/internal/app/service/billing"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

// MonthlyStats is the per-month snapshot shown on the payments overview.
type MonthlyStats struct {
	TotalConfirmed    float64 `json:"total_confirmed"`
	TotalExpected     float64 `json:"total_expected"`
	ConfirmationRate  float64 `json:"confirmation_rate"`
	RenewalsCount     int     `json:"renewals_count"`
	NewCustomersCount int     `json:"new_customers_count"`
	NewCustomersValue float64 `json:"new_customers_value"`
}

// GlobalStats is the aggregate snapshot shown on the reports page.
type GlobalStats struct {
	ActiveSubscriptions    int                         `json:"active_subscriptions"`
	ChurnRate              float64                     `json:"churn_rate"`
	DeactivatedCount       int                         `json:"deactivated_count"`
	ExpectedMonthlyRevenue float64                     `json:"expected_monthly_revenue"`
	CurrentMonthRevenue    float64                     `json:"current_month_revenue"`
	LastMonthRevenue       float64                     `json:"last_month_revenue"`
	RevenueGrowth          float64                     `json:"revenue_growth"`
	LuxuryCustomersCount   int                         `json:"luxury_customers_count"`
	LuxuryRevenue          float64                     `json:"luxury_revenue"`
	SalesTeamRevenue       map[types.SalesTeam]float64 `json:"sales_team_revenue"`
}

// occurrence is the recorded/expected union the monthly aggregation runs over.
type occurrence struct {
	customerID string
	amount     float64
	date       time.Time
	status     types.PaymentStatus
}

// ComputeMonthlyStats aggregates recorded and expected occurrences falling in
// the calendar month of targetMonth. All rates are 0 on an empty month.
func ComputeMonthlyStats(customers []models.Customer, payments []models.Payment, expected []billing.ExpectedPayment, targetMonth time.Time) MonthlyStats {
	var inMonth []occurrence
	for _, p := range payments {
		if billing.SameMonth(p.Date, targetMonth) {
			inMonth = append(inMonth, occurrence{customerID: p.CustomerID, amount: p.Amount, date: p.Date, status: p.Status})
		}
	}
	for _, e := range expected {
		if billing.SameMonth(e.Date, targetMonth) {
			inMonth = append(inMonth, occurrence{customerID: e.CustomerID, amount: e.Amount, date: e.Date, status: e.Status})
		}
	}

	var stats MonthlyStats
	confirmed := lo.Filter(inMonth, func(o occurrence, _ int) bool { return o.status == types.PaymentStatusConfirmed })
	stats.TotalConfirmed = lo.SumBy(confirmed, func(o occurrence) float64 { return o.amount })
	stats.TotalExpected = lo.SumBy(inMonth, func(o occurrence) float64 { return o.amount })
	if len(inMonth) > 0 {
		stats.ConfirmationRate = float64(len(confirmed)) / float64(len(inMonth)) * 100
	}

	// A renewal is an in-month occurrence whose customer already has a
	// recorded payment strictly before it.
	stats.RenewalsCount = lo.CountBy(inMonth, func(o occurrence) bool {
		return lo.SomeBy(payments, func(p models.Payment) bool {
			return p.CustomerID == o.customerID && p.Date.Before(o.date)
		})
	})

	newCustomers := lo.Filter(customers, func(c models.Customer, _ int) bool {
		return billing.SameMonth(c.ActivationDate, targetMonth)
	})
	stats.NewCustomersCount = len(newCustomers)
	stats.NewCustomersValue = lo.SumBy(newCustomers, func(c models.Customer) float64 { return c.Amount })

	return stats
}

// ComputeGlobalStats aggregates the whole customer and payment base relative
// to now.
//
// ExpectedMonthlyRevenue normalizes each active customer's amount to a
// monthly figure (quarterly/3, biannual/6, annual/12; oneTime excluded from
// recurring revenue). SalesTeamRevenue deliberately sums the raw amounts per
// team without normalization.
//
// Revenue growth against a zero previous-month baseline is 0% when the
// current month is also zero, +100% otherwise.
func ComputeGlobalStats(customers []models.Customer, payments []models.Payment, now time.Time) GlobalStats {
	active := lo.Filter(customers, func(c models.Customer, _ int) bool { return c.Active })

	var stats GlobalStats
	stats.ActiveSubscriptions = len(active)

	stats.DeactivatedCount = lo.CountBy(customers, func(c models.Customer) bool {
		return c.DeactivationDate != nil && billing.SameMonth(*c.DeactivationDate, now)
	})
	if stats.ActiveSubscriptions > 0 {
		stats.ChurnRate = float64(stats.DeactivatedCount) / float64(stats.ActiveSubscriptions) * 100
	}

	stats.ExpectedMonthlyRevenue = lo.SumBy(active, func(c models.Customer) float64 {
		if months := c.PaymentFrequency.MonthsPerCycle(); months > 0 {
			return c.Amount / float64(months)
		}
		return 0
	})

	// First of the previous month; AddDate on a month-end day would normalize
	// past the intended month.
	lastMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	confirmedIn := func(month time.Time) []models.Payment {
		return lo.Filter(payments, func(p models.Payment, _ int) bool {
			return p.Status == types.PaymentStatusConfirmed && billing.SameMonth(p.Date, month)
		})
	}
	currentConfirmed := confirmedIn(now)
	stats.CurrentMonthRevenue = lo.SumBy(currentConfirmed, func(p models.Payment) float64 { return p.Amount })
	stats.LastMonthRevenue = lo.SumBy(confirmedIn(lastMonth), func(p models.Payment) float64 { return p.Amount })

	switch {
	case stats.LastMonthRevenue > 0:
		stats.RevenueGrowth = (stats.CurrentMonthRevenue - stats.LastMonthRevenue) / stats.LastMonthRevenue * 100
	case stats.CurrentMonthRevenue > 0:
		stats.RevenueGrowth = 100
	}

	stats.LuxuryCustomersCount = lo.CountBy(active, func(c models.Customer) bool { return c.IsLuxury })
	// Revenue attribution spans all luxury customers: a confirmed payment
	// from a since-deactivated one still counts.
	luxury := lo.Filter(customers, func(c models.Customer, _ int) bool { return c.IsLuxury })
	luxuryIDs := lo.SliceToMap(luxury, func(c models.Customer) (string, struct{}) { return c.ID, struct{}{} })
	stats.LuxuryRevenue = lo.SumBy(currentConfirmed, func(p models.Payment) float64 {
		if _, ok := luxuryIDs[p.CustomerID]; ok {
			return p.Amount
		}
		return 0
	})

	stats.SalesTeamRevenue = make(map[types.SalesTeam]float64)
	for _, c := range active {
		stats.SalesTeamRevenue[c.SalesTeam] += c.Amount
	}

	return stats
}
