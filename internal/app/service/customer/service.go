package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/logctx"
	"github.com/veloweb/subman/pkg/tool"
	"github.com/veloweb/subman/pkg/types"
)

var (
	ErrNotFound         = errors.New("customer not found")
	ErrInvalidName      = errors.New("name is required")
	ErrInvalidEmail     = errors.New("email is required")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidPlan      = errors.New("invalid subscription type")
	ErrInvalidFrequency = errors.New("invalid payment frequency")
	ErrInvalidTeam      = errors.New("invalid sales team")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// UpsertRequest carries the operator-editable customer fields. Enum and
// amount validation happens here so malformed values never reach storage or
// the schedule generator.
type UpsertRequest struct {
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	SubscriptionType types.SubscriptionPlan `json:"subscription_type"`
	PaymentFrequency types.PaymentFrequency `json:"payment_frequency"`
	Amount           float64                `json:"amount"`
	StripeLink       string                 `json:"stripe_link"`
	CRMLink          string                 `json:"crm_link"`
	SalesTeam        types.SalesTeam        `json:"sales_team"`
	IsLuxury         bool                   `json:"is_luxury"`
	ActivationDate   *time.Time             `json:"activation_date"`
	BillingInfo      *types.BillingInfo     `json:"billing_info"`
}

func (r *UpsertRequest) validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	if r.Email == "" {
		return ErrInvalidEmail
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !r.SubscriptionType.Valid() {
		return ErrInvalidPlan
	}
	if !r.PaymentFrequency.Valid() {
		return ErrInvalidFrequency
	}
	if !r.SalesTeam.Valid() {
		return ErrInvalidTeam
	}
	return nil
}

// IsValidationError reports whether err is a request-shape problem rather
// than a storage failure.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPlan),
		errors.Is(err, ErrInvalidFrequency),
		errors.Is(err, ErrInvalidTeam):
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, req *UpsertRequest) (*models.Customer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	activation := time.Now()
	if req.ActivationDate != nil {
		activation = *req.ActivationDate
	}
	c := &models.Customer{
		ID:               tool.GenerateUUIDV7(),
		Name:             req.Name,
		Email:            req.Email,
		SubscriptionType: req.SubscriptionType,
		PaymentFrequency: req.PaymentFrequency,
		Amount:           req.Amount,
		StripeLink:       req.StripeLink,
		CRMLink:          req.CRMLink,
		SalesTeam:        req.SalesTeam,
		IsLuxury:         req.IsLuxury,
		Active:           true,
		ActivationDate:   activation,
		BillingInfo:      datatypes.NewJSONType(req.BillingInfo),
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("customer created", "customer_id", c.ID)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpsertRequest) (*models.Customer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Email = req.Email
	c.SubscriptionType = req.SubscriptionType
	c.PaymentFrequency = req.PaymentFrequency
	c.Amount = req.Amount
	c.StripeLink = req.StripeLink
	c.CRMLink = req.CRMLink
	c.SalesTeam = req.SalesTeam
	c.IsLuxury = req.IsLuxury
	if req.ActivationDate != nil {
		c.ActivationDate = *req.ActivationDate
	}
	c.BillingInfo = datatypes.NewJSONType(req.BillingInfo)
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return c, nil
}

// Deactivate flips the customer to inactive and stamps the deactivation
// date. Deactivating an already inactive customer is a no-op.
func (s *Service) Deactivate(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Active {
		return c, nil
	}
	now := time.Now()
	c.Active = false
	c.DeactivationDate = &now
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate customer: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("customer deactivated", "customer_id", c.ID)
	return c, nil
}

// Reactivate clears the deactivation date and restarts the billing schedule
// from the reactivation moment.
func (s *Service) Reactivate(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Active {
		return c, nil
	}
	c.Active = true
	c.DeactivationDate = nil
	c.ActivationDate = time.Now()
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("failed to reactivate customer: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("customer reactivated", "customer_id", c.ID)
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// ListRequest filters the customer listing. Active is a tri-state: nil means
// both active and inactive customers.
type ListRequest struct {
	Active *bool
	Team   types.SalesTeam
	Search string
}

func (s *Service) List(ctx context.Context, req *ListRequest) ([]models.Customer, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if req != nil {
		if req.Active != nil {
			q = q.Where("active = ?", *req.Active)
		}
		if req.Team != "" {
			q = q.Where("sales_team = ?", req.Team)
		}
		if req.Search != "" {
			pattern := "%" + req.Search + "%"
			q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
	}
	var items []models.Customer
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return items, nil
}

// Module exposes the customer service via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
