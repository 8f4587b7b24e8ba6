package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/veloweb/subman/internal/app/api/server"
	"github.com/veloweb/subman/internal/app/service/activity"
	"github.com/veloweb/subman/internal/app/service/auth"
	"github.com/veloweb/subman/internal/app/service/customer"
	"github.com/veloweb/subman/internal/app/service/importer"
	"github.com/veloweb/subman/internal/app/service/notification"
	"github.com/veloweb/subman/internal/app/service/payment"
	"github.com/veloweb/subman/internal/app/service/reporting"
	"github.com/veloweb/subman/internal/platform/db"
	"github.com/veloweb/subman/pkg/config"
	"github.com/veloweb/subman/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	auth.Module,
	customer.Module,
	payment.Module,
	reporting.Module,
	notification.Module,
	activity.Module,
	importer.Module,
)
