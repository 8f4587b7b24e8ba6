package customer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veloweb/subman/pkg/types"
)

func validRequest() *UpsertRequest {
	return &UpsertRequest{
		Name:             "Hotel Belvedere",
		Email:            "info@belvedere.it",
		SubscriptionType: types.SubscriptionPlanSito2,
		PaymentFrequency: types.PaymentFrequencyMonthly,
		Amount:           49.9,
		SalesTeam:        types.SalesTeamIT,
	}
}

func TestUpsertRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().validate())

	cases := []struct {
		name    string
		mutate  func(r *UpsertRequest)
		wantErr error
	}{
		{"missing name", func(r *UpsertRequest) { r.Name = "" }, ErrInvalidName},
		{"missing email", func(r *UpsertRequest) { r.Email = "" }, ErrInvalidEmail},
		{"zero amount", func(r *UpsertRequest) { r.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(r *UpsertRequest) { r.Amount = -1 }, ErrInvalidAmount},
		{"unknown plan", func(r *UpsertRequest) { r.SubscriptionType = "GOLD" }, ErrInvalidPlan},
		{"unknown frequency", func(r *UpsertRequest) { r.PaymentFrequency = "weekly" }, ErrInvalidFrequency},
		{"unknown team", func(r *UpsertRequest) { r.SalesTeam = "DE" }, ErrInvalidTeam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(r)
			require.ErrorIs(t, r.validate(), tc.wantErr)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	require.True(t, IsValidationError(ErrInvalidAmount))
	require.True(t, IsValidationError(ErrInvalidTeam))
	require.False(t, IsValidationError(ErrNotFound))
	require.False(t, IsValidationError(nil))
}
