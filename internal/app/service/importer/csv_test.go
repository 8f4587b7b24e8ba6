package importer

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/types"
)

func TestExportCustomers_WritesHeaderAndRows(t *testing.T) {
	deact := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{
			ID:               "c1",
			Name:             "Hotel Belvedere",
			Email:            "info@belvedere.it",
			SubscriptionType: types.SubscriptionPlanSito2,
			PaymentFrequency: types.PaymentFrequencyMonthly,
			Amount:           49.9,
			SalesTeam:        types.SalesTeamIT,
			IsLuxury:         true,
			Active:           true,
			ActivationDate:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			BillingInfo: datatypes.NewJSONType(&types.BillingInfo{
				CompanyName: "Belvedere SRL",
				VatNumber:   "IT01234567890",
				Country:     "IT",
				Address:     "Via Roma 1",
				SDI:         "ABC1234",
			}),
		},
		{
			ID:               "c2",
			Name:             "Fleet Nord",
			Email:            "fleet@nord.es",
			SubscriptionType: types.SubscriptionPlanFleetPro,
			PaymentFrequency: types.PaymentFrequencyAnnual,
			Amount:           1200,
			SalesTeam:        types.SalesTeamES,
			Active:           false,
			ActivationDate:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
			DeactivationDate: &deact,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCustomers(&buf, customers))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Header, rows[0])

	first := rows[1]
	require.Equal(t, "Hotel Belvedere", first[0])
	require.Equal(t, "info@belvedere.it", first[1])
	require.Equal(t, "SITO_2.0", first[2])
	require.Equal(t, "monthly", first[3])
	require.Equal(t, "49.90", first[4])
	require.Equal(t, "IT", first[5])
	require.Equal(t, "true", first[6])
	require.Equal(t, "Attivo", first[7])
	require.Equal(t, "2024-01-15", first[8])
	require.Equal(t, "", first[9])
	require.Equal(t, "Belvedere SRL", first[10])

	second := rows[2]
	require.Equal(t, "Inattivo", second[7])
	require.Equal(t, "2024-03-01", second[9])
	require.Equal(t, "", second[10])
}

func TestExportCustomers_EmptyListWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCustomers(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, Header, rows[0])
}
