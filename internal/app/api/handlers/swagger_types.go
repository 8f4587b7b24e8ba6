package handlers

import (
	"github.com/veloweb/subman/internal/app/service/auth"
	"github.com/veloweb/subman/internal/app/service/importer"
	"github.com/veloweb/subman/internal/app/service/notification"
	"github.com/veloweb/subman/internal/app/service/payment"
	"github.com/veloweb/subman/internal/models"
	"github.com/veloweb/subman/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespLogin wraps the login result in the standard envelope.
type RespLogin struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    auth.LoginResult         `json:"data"`
}

// RespCustomer wraps a single customer in the standard envelope.
type RespCustomer struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Customer          `json:"data"`
}

// RespCustomers wraps a customer list in the standard envelope.
type RespCustomers struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Customer        `json:"data"`
}

// RespImport wraps an import summary in the standard envelope.
type RespImport struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    importer.Result          `json:"data"`
}

// RespPayment wraps a single payment in the standard envelope.
type RespPayment struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.Payment           `json:"data"`
}

// RespMonthOverview wraps the month overview in the standard envelope.
type RespMonthOverview struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    payment.MonthOverview    `json:"data"`
}

// RespScanPayments wraps the raw payment listing in the standard envelope.
type RespScanPayments struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    payment.ScanPaymentsResponse `json:"data"`
}

// RespReport wraps the reports payload in the standard envelope.
type RespReport struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    Report                   `json:"data"`
}

// RespNotifications wraps the notification list in the standard envelope.
type RespNotifications struct {
	Code    response.APIResponseCode    `json:"code"`
	Message string                      `json:"message"`
	Data    []notification.Notification `json:"data"`
}

// RespActivities wraps the activity list in the standard envelope.
type RespActivities struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []models.Activity        `json:"data"`
}
