package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/veloweb/subman/docs"
	"github.com/veloweb/subman/internal/app/api/handlers"
	mw "github.com/veloweb/subman/internal/app/api/middleware"
	activitysvc "github.com/veloweb/subman/internal/app/service/activity"
	authsvc "github.com/veloweb/subman/internal/app/service/auth"
	customersvc "github.com/veloweb/subman/internal/app/service/customer"
	"github.com/veloweb/subman/internal/app/service/importer"
	notificationsvc "github.com/veloweb/subman/internal/app/service/notification"
	paymentsvc "github.com/veloweb/subman/internal/app/service/payment"
	reportingsvc "github.com/veloweb/subman/internal/app/service/reporting"
	cfgpkg "github.com/veloweb/subman/pkg/config"
	metrics "github.com/veloweb/subman/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request tracing only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log           *zap.SugaredLogger
	Cfg           *cfgpkg.Config
	Auth          *authsvc.Service
	Customers     *customersvc.Service
	Payments      *paymentsvc.Service
	Reports       *reportingsvc.Service
	Notifications *notificationsvc.Service
	Activities    *activitysvc.Service
	Importer      *importer.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			Subsystem: "subman",
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: health, swagger and login
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1Public := r.Group("/api/v1")
	apiV1Public.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())

	// Protected group: everything behind bearer auth
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware(), mw.AuthMiddleware(d.Auth))

	handlers.RegisterAuthRoutes(apiV1Public, apiV1, d.Auth, d.Activities)
	handlers.RegisterCustomerRoutes(apiV1, d.Customers, d.Importer, d.Activities)
	handlers.RegisterPaymentRoutes(apiV1, d.Payments, d.Customers, d.Activities)
	handlers.RegisterReportRoutes(apiV1, d.Reports, d.Notifications)
	handlers.RegisterActivityRoutes(apiV1, d.Activities)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
