package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/notification"
	"github.com/veloweb/subman/internal/app/service/reporting"
	"github.com/veloweb/subman/pkg/response"
)

// Report bundles the aggregate stats with the current month's snapshot.
type Report struct {
	Global  *reporting.GlobalStats  `json:"global"`
	Monthly *reporting.MonthlyStats `json:"monthly"`
}

// @Summary      Reports
// @Description  Aggregate subscription stats plus the current month snapshot.
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  handlers.RespReport
// @Router       /api/v1/reports [get]
func ApiGetReport(svc *reporting.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		global, err := svc.GlobalReport(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		monthly, err := svc.MonthlyReport(c.Request.Context(), time.Now())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(&Report{Global: global, Monthly: monthly}))
	}
}

// @Summary      Notifications
// @Description  Upcoming payments, problem payments and recent deactivations.
// @Tags         Notifications
// @Produce      json
// @Success      200  {object}  handlers.RespNotifications
// @Router       /api/v1/notifications [get]
func ApiListNotifications(svc *notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterReportRoutes(r gin.IRouter, reports *reporting.Service, notifications *notification.Service) {
	r.GET("/reports", ApiGetReport(reports))
	r.GET("/notifications", ApiListNotifications(notifications))
}
