package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/veloweb/subman/internal/app/service/customer"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/logctx"
	"github.com/veloweb/subman/pkg/types"
)

// Header is the canonical CSV column set, kept compatible with the sheets
// the sales teams already exchange (Italian labels).
var Header = []string{
	"Nome", "Email", "Tipo Abbonamento", "Frequenza Pagamento", "Importo",
	"Sales Team", "Luxury", "Stato", "Data Attivazione", "Data Disattivazione",
	"Nome Azienda", "P.IVA", "Nazione", "Indirizzo", "SDI", "PEC",
	"Link Stripe", "Link CRM",
}

type Service struct {
	customers *customer.Service
	log       *zap.SugaredLogger
}

func New(customers *customer.Service, log *zap.SugaredLogger) *Service {
	return &Service{customers: customers, log: log}
}

// Result summarizes an import run. Rows that fail validation are skipped and
// counted, they never abort the rest of the file.
type Result struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportCustomers reads a header-mapped CSV stream and creates one customer
// per valid row through the customer service.
func (s *Service) ImportCustomers(ctx context.Context, r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	res := &Result{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		name := field(row, "Nome")
		email := strings.ToLower(field(row, "Email"))
		amount, amountErr := strconv.ParseFloat(field(row, "Importo"), 64)
		if name == "" || email == "" || amountErr != nil {
			res.Skipped++
			continue
		}

		req := &customer.UpsertRequest{
			Name:             name,
			Email:            email,
			SubscriptionType: types.SubscriptionPlan(field(row, "Tipo Abbonamento")),
			PaymentFrequency: types.PaymentFrequency(field(row, "Frequenza Pagamento")),
			Amount:           amount,
			SalesTeam:        types.SalesTeam(field(row, "Sales Team")),
			IsLuxury:         strings.EqualFold(field(row, "Luxury"), "true"),
			StripeLink:       field(row, "Link Stripe"),
			CRMLink:          field(row, "Link CRM"),
		}
		if company := field(row, "Nome Azienda"); company != "" {
			req.BillingInfo = &types.BillingInfo{
				CompanyName: company,
				VatNumber:   field(row, "P.IVA"),
				Country:     field(row, "Nazione"),
				Address:     field(row, "Indirizzo"),
				SDI:         field(row, "SDI"),
				PEC:         field(row, "PEC"),
			}
		}

		if _, err := s.customers.Create(ctx, req); err != nil {
			logctx.FromCtx(ctx, s.log).Warnw("skipping csv row", "email", email, "err", err)
			res.Skipped++
			continue
		}
		res.Imported++
	}
	return res, nil
}

// ExportCustomers writes the customer list as CSV with the canonical header.
func ExportCustomers(w io.Writer, customers []models.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range customers {
		status := "Attivo"
		if !c.Active {
			status = "Inattivo"
		}
		deactivation := ""
		if c.DeactivationDate != nil {
			deactivation = c.DeactivationDate.Format(time.DateOnly)
		}
		var bi types.BillingInfo
		if info := c.GetBillingInfo(); info != nil {
			bi = *info
		}
		row := []string{
			c.Name,
			c.Email,
			string(c.SubscriptionType),
			string(c.PaymentFrequency),
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
			string(c.SalesTeam),
			strconv.FormatBool(c.IsLuxury),
			status,
			c.ActivationDate.Format(time.DateOnly),
			deactivation,
			bi.CompanyName, bi.VatNumber, bi.Country, bi.Address, bi.SDI, bi.PEC,
			c.StripeLink,
			c.CRMLink,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Module exposes the importer via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
