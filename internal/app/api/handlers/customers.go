package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veloweb/subman/internal/app/service/activity"
	"github.com/veloweb/subman/internal/app/service/customer"
	"github.com/veloweb/subman/internal/app/service/importer"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/response"
	"github.com/veloweb/subman/pkg/types"
)

func customerErrCode(err error) response.APIResponseCode {
	if customer.IsValidationError(err) || errors.Is(err, customer.ErrNotFound) {
		return response.APIResponseCodeBadRequest
	}
	return response.APIResponseCodeError
}

// @Summary      List Customers
// @Description  Lists customers with optional active/team/search filters.
// @Tags         Customers
// @Produce      json
// @Param        active  query  bool    false  "Active flag"
// @Param        team    query  string  false  "Sales team"
// @Param        search  query  string  false  "Name or email fragment"
// @Success      200  {object}  handlers.RespCustomers
// @Router       /api/v1/customers [get]
func ApiListCustomers(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &customer.ListRequest{
			Team:   types.SalesTeam(c.Query("team")),
			Search: c.Query("search"),
		}
		if v := c.Query("active"); v != "" {
			active := v == "true"
			req.Active = &active
		}
		items, err := svc.List(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create Customer
// @Description  Creates a customer; activation date defaults to now.
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        request body customer.UpsertRequest true "Customer fields"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers [post]
func ApiCreateCustomer(svc *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		created, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](customerErrCode(err), err.Error()))
			return
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityCustomerCreated,
			models.CustomerActivityDetails(created.ID, created.Name))
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update Customer
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body customer.UpsertRequest true "Customer fields"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers/{id} [put]
func ApiUpdateCustomer(svc *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customer.UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](customerErrCode(err), err.Error()))
			return
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityCustomerUpdated,
			models.CustomerActivityDetails(updated.ID, updated.Name))
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Deactivate Customer
// @Tags         Customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers/{id}/deactivate [post]
func ApiDeactivateCustomer(svc *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := svc.Deactivate(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](customerErrCode(err), err.Error()))
			return
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityCustomerDeactivated,
			models.CustomerActivityDetails(updated.ID, updated.Name))
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Reactivate Customer
// @Tags         Customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200  {object}  handlers.RespCustomer
// @Router       /api/v1/customers/{id}/reactivate [post]
func ApiReactivateCustomer(svc *customer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := svc.Reactivate(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](customerErrCode(err), err.Error()))
			return
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityCustomerReactivated,
			models.CustomerActivityDetails(updated.ID, updated.Name))
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Import Customers (CSV)
// @Description  Imports customers from a header-mapped CSV request body.
// @Tags         Customers
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  handlers.RespImport
// @Router       /api/v1/customers/import [post]
func ApiImportCustomers(svc *importer.Service, activitySvc *activity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ImportCustomers(c.Request.Context(), c.Request.Body)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		activitySvc.Append(c.Request.Context(), currentActor(c), types.ActivityCustomersImported,
			models.ImportActivityDetails(res.Imported))
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Export Customers (CSV)
// @Tags         Customers
// @Produce      text/csv
// @Param        active query bool false "Active flag"
// @Success      200  {string}  string "CSV payload"
// @Router       /api/v1/customers/export [get]
func ApiExportCustomers(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &customer.ListRequest{}
		if v := c.Query("active"); v != "" {
			active := v == "true"
			req.Active = &active
		}
		items, err := svc.List(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		filename := fmt.Sprintf("customers_export_%s.csv", time.Now().Format(time.DateOnly))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := importer.ExportCustomers(c.Writer, items); err != nil {
			_ = c.Error(err)
		}
	}
}

func RegisterCustomerRoutes(r gin.IRouter, svc *customer.Service, imp *importer.Service, activitySvc *activity.Service) {
	r.GET("/customers", ApiListCustomers(svc))
	r.POST("/customers", ApiCreateCustomer(svc, activitySvc))
	r.PUT("/customers/:id", ApiUpdateCustomer(svc, activitySvc))
	r.POST("/customers/:id/deactivate", ApiDeactivateCustomer(svc, activitySvc))
	r.POST("/customers/:id/reactivate", ApiReactivateCustomer(svc, activitySvc))
	r.POST("/customers/import", ApiImportCustomers(imp, activitySvc))
	r.GET("/customers/export", ApiExportCustomers(svc))
}
