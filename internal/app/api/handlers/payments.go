package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/activity"
	"github.com/veloweb/subman/internal/app/service/customer"
	"github.com/veloweb/subman/internal/app/service/payment"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/response"
	"github.com/veloweb/subman/pkg/types"
)

func paymentErrCode(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, payment.ErrNotFound),
		errors.Is(err, payment.ErrUnknownCustomer),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidStatus):
		return response.APIResponseCodeBadRequest
	}
	return response.APIResponseCodeError
}

// @Summary      Month Overview
// @Description  Returns recorded and expected payments for one calendar month with its stats.
// @Tags         Payments
// @Produce      json
// @Param        month query string false "Target month (YYYY-MM, default current)"
// @Success      200  {object}  handlers.RespMonthOverview
// @Router       /api/v1/payments [get]
func ApiMonthOverview(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := time.Now()
		if v := c.Query("month"); v != "" {
			parsed, err := time.Parse("2006-01", v)
			if err != nil {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid month, want YYYY-MM"))
				return
			}
			target = parsed
		}
		overview, err := svc.Month(c.Request.Context(), target)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(overview))
	}
}

type RecordPaymentRequest struct {
	CustomerID string              `json:"customer_id" binding:"required"`
	Amount     float64             `json:"amount" binding:"required"`
	Date       time.Time           `json:"date" binding:"required"`
	Status     types.PaymentStatus `json:"status" binding:"required"`
}

// @Summary      Record Payment
// @Description  Logs a payment, promoting the month's expected occurrence if one exists.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body RecordPaymentRequest true "Payment fields"
// @Success      200  {object}  handlers.RespPayment
// @Router       /api/v1/payments [post]
func ApiRecordPayment(svc *payment.Service, customers *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		actor := currentActor(c)
		created, err := svc.Record(c.Request.Context(), &payment.RecordRequest{
			CustomerID: req.CustomerID,
			Amount:     req.Amount,
			Date:       req.Date,
			Status:     req.Status,
			CreatedBy:  actor.Name,
		})
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](paymentErrCode(err), err.Error()))
			return
		}

		customerName := ""
		if owner, err := customers.Get(c.Request.Context(), created.CustomerID); err == nil {
			customerName = owner.Name
		}
		activityType := types.ActivityPaymentCreated
		if created.Status == types.PaymentStatusConfirmed {
			activityType = types.ActivityPaymentConfirmed
		}
		activitySvc.Append(c.Request.Context(), actor, activityType,
			models.PaymentActivityDetails(created.CustomerID, customerName, created.ID, created.Amount))

		c.JSON(http.StatusOK, response.OKT(created))
	}
}

type UpdatePaymentStatusRequest struct {
	Status types.PaymentStatus `json:"status" binding:"required"`
}

// @Summary      Update Payment Status
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID"
// @Param        request body UpdatePaymentStatusRequest true "New status"
// @Success      200  {object}  handlers.RespPayment
// @Router       /api/v1/payments/{id}/status [put]
func ApiUpdatePaymentStatus(svc *payment.Service, customers *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		before, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](paymentErrCode(err), err.Error()))
			return
		}
		oldStatus := before.Status

		updated, err := svc.UpdateStatus(c.Request.Context(), before.ID, req.Status)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](paymentErrCode(err), err.Error()))
			return
		}

		customerName := ""
		if owner, err := customers.Get(c.Request.Context(), updated.CustomerID); err == nil {
			customerName = owner.Name
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityPaymentStatusUpdated,
			models.PaymentStatusActivityDetails(updated.CustomerID, customerName, updated.ID, updated.Amount, oldStatus, updated.Status))

		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Scan Payments
// @Description  Paginated, filterable raw payment listing.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body payment.ScanPaymentsRequest true "Filters, pagination, sorting"
// @Success      200  {object}  handlers.RespScanPayments
// @Router       /api/v1/payments/scan [post]
func ApiScanPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ScanPaymentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.ScanPayments(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, svc *payment.Service, customers *customer.Service, activitySvc *activity.Service) {
	r.GET("/payments", ApiMonthOverview(svc))
	r.POST("/payments", ApiRecordPayment(svc, customers, activitySvc))
	r.PUT("/payments/:id/status", ApiUpdatePaymentStatus(svc, customers, activitySvc))
	r.POST("/payments/scan", ApiScanPayments(svc))
}
