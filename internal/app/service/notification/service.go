package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/config"
)

type Service struct {
	db  *gorm.DB
	cfg *config.Config
	log *zap.SugaredLogger
}

func New(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

// List derives the current notifications from fresh snapshots.
func (s *Service) List(ctx context.Context) ([]Notification, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	lookahead := s.cfg.Schedule.LookaheadDays
	if lookahead <= 0 {
		lookahead = 15
	}
	lookback := s.cfg.Schedule.LookbackDays
	if lookback <= 0 {
		lookback = 7
	}
	return Derive(customers, payments, time.Now(), lookahead, lookback), nil
}

// Module exposes the notification service via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
