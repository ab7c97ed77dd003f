package router

import (
	v1 "github.com/AbdoTarek2211/Cost-Management/internal/api/v1"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers wired into the router
type Handlers struct {
	Cost    *v1.CostHandler
	Invoice *v1.InvoiceHandler
	Payment *v1.PaymentHandler
	Report  *v1.ReportHandler
}

func SetupRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler())

	root := router.Group("/v1")

	costs := root.Group("/costs")
	{
		costs.POST("", handlers.Cost.CreateCost)
		costs.GET("", handlers.Cost.ListCosts)
		costs.GET("/:id", handlers.Cost.GetCost)
	}

	invoices := root.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/due-reminders", handlers.Invoice.GetDueReminders)
		invoices.GET("/report/status", handlers.Report.GetStatusReport)
		invoices.GET("/report/client", handlers.Report.GetClientReport)
		invoices.GET("/report/date-range", handlers.Report.GetDateRangeReport)
		invoices.GET("/report/summary", handlers.Report.GetSummaryStatistics)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.POST("/:id/payments", handlers.Payment.RecordPayment)
		invoices.GET("/:id/payments", handlers.Payment.GetPaymentHistory)
	}

	payments := root.Group("/payments")
	{
		payments.GET("/:id/receipt", handlers.Payment.GenerateReceipt)
	}

	return router
}
