package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/veloweb/subman/internal/app/service/billing"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/config"
)

// Service loads fresh customer/payment snapshots and runs the pure
// aggregations over them. Nothing is cached; every call recomputes.
type Service struct {
	db  *gorm.DB
	cfg *config.Config
	log *zap.SugaredLogger
}

func New(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

func (s *Service) loadSnapshots(ctx context.Context) ([]models.Customer, []models.Payment, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return customers, payments, nil
}

// MonthlyReport computes the MonthlyStats for the calendar month of target.
func (s *Service) MonthlyReport(ctx context.Context, target time.Time) (*MonthlyStats, error) {
	customers, payments, err := s.loadSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	expected := billing.GenerateAll(customers, payments, s.cfg.Horizon(time.Now()))
	stats := ComputeMonthlyStats(customers, payments, expected, target)
	return &stats, nil
}

// GlobalReport computes the aggregate stats relative to now.
func (s *Service) GlobalReport(ctx context.Context) (*GlobalStats, error) {
	customers, payments, err := s.loadSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeGlobalStats(customers, payments, time.Now())
	return &stats, nil
}
