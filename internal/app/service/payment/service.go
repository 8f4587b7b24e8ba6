package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veloweb/subman/internal/app/service/billing"
	"github.com/veloweb/subman/internal/app/service/reporting"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/config"
	"github.com/veloweb/subman/pkg/logctx"
	"github.com/veloweb/subman/pkg/tool"
	"github.com/veloweb/subman/pkg/types"
)

var (
	ErrNotFound        = errors.New("payment not found")
	ErrUnknownCustomer = errors.New("payment references an unknown customer")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidStatus   = errors.New("invalid payment status")
)

type Service struct {
	db  *gorm.DB
	cfg *config.Config
	log *zap.SugaredLogger
}

func New(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

// RecordRequest logs a payment, either manually or by promoting an expected
// occurrence that the operator acted upon.
type RecordRequest struct {
	CustomerID string              `json:"customer_id"`
	Amount     float64             `json:"amount"`
	Date       time.Time           `json:"date"`
	Status     types.PaymentStatus `json:"status"`
	CreatedBy  string              `json:"created_by"`
}

// Record persists a payment row. The owning customer must exist and the
// status must be one of the closed set.
func (s *Service) Record(ctx context.Context, req *RecordRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", req.CustomerID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if count == 0 {
		return nil, ErrUnknownCustomer
	}

	p := &models.Payment{
		ID:         tool.GenerateUUIDV7(),
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Date:       req.Date,
		Status:     req.Status,
		CreatedBy:  req.CreatedBy,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("payment recorded",
		"payment_id", p.ID, "customer_id", p.CustomerID, "status", p.Status)
	return p, nil
}

// UpdateStatus transitions a payment to status. Any transition is allowed;
// attribution is the caller's concern (one activity entry per change).
func (s *Service) UpdateStatus(ctx context.Context, id string, status types.PaymentStatus) (*models.Payment, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// MonthRow is one line of the month overview: a recorded payment or an
// expected occurrence, joined with its customer.
type MonthRow struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Amount        float64             `json:"amount"`
	Date          time.Time           `json:"date"`
	Status        types.PaymentStatus `json:"status"`
	Expected      bool                `json:"expected"`
}

// MonthOverview combines the month's rows with its aggregate stats.
type MonthOverview struct {
	Rows  []MonthRow             `json:"rows"`
	Stats reporting.MonthlyStats `json:"stats"`
}

// Month returns the recorded-and-expected view of one calendar month,
// recomputed from fresh snapshots on every call.
func (s *Service) Month(ctx context.Context, target time.Time) (*MonthOverview, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	customerByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	expected := billing.GenerateAll(customers, payments, s.cfg.Horizon(time.Now()))

	var rows []MonthRow
	for _, p := range payments {
		c, ok := customerByID[p.CustomerID]
		if !ok || !billing.SameMonth(p.Date, target) {
			continue
		}
		rows = append(rows, MonthRow{
			ID: p.ID, CustomerID: p.CustomerID, CustomerName: c.Name, CustomerEmail: c.Email,
			Amount: p.Amount, Date: p.Date, Status: p.Status,
		})
	}
	for _, e := range expected {
		c, ok := customerByID[e.CustomerID]
		if !ok || !billing.SameMonth(e.Date, target) {
			continue
		}
		rows = append(rows, MonthRow{
			ID: e.ID, CustomerID: e.CustomerID, CustomerName: c.Name, CustomerEmail: c.Email,
			Amount: e.Amount, Date: e.Date, Status: e.Status, Expected: true,
		})
	}

	stats := reporting.ComputeMonthlyStats(customers, payments, expected, target)
	return &MonthOverview{Rows: rows, Stats: stats}, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

type ScanPaymentsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanPaymentsResponse struct {
	Items []*models.Payment `json:"items"`
	Total int64             `json:"total"`
}

// ScanPayments implements the paginated, filterable raw payment listing.
func (s *Service) ScanPayments(ctx context.Context, req *ScanPaymentsRequest) (*ScanPaymentsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Payment{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "date"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	var rows []*models.Payment
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return &ScanPaymentsResponse{Items: rows, Total: total}, nil
}

// Module exposes the payment service via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
