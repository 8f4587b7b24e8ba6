package activity

import (
	"context"
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

const defaultListLimit = 100

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Actor identifies the operator an activity is attributed to.
type Actor struct {
	ID   string
	Name string
}

// Append records one audit entry. Audit writes are best effort: a failed
// insert is logged and must not fail the mutation it describes.
func (s *Service) Append(ctx context.Context, actor Actor, t types.ActivityType, details *models.ActivityDetails) {
	entry := &models.Activity{
		ID:        tool.GenerateUUIDV7(),
		Type:      t,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: time.Now(),
		Details:   datatypes.NewJSONType(details),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("failed to append activity", "type", t, "err", err)
	}
}

// List returns the most recent activities, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	var items []models.Activity
	err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return items, nil
}

// Module exposes the activity service via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
