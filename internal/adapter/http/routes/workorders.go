package routes

import (
	"os_service_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/workorders"
	PathQuotes     = "/quotes"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, quoteHandler *handlers.QuoteHandler) {
	workorders := rg.Group(PathWorkOrders)
	{
		workorders.POST("", workOrderHandler.CreateWorkOrder)
		workorders.GET("", workOrderHandler.ListWorkOrders)
		workorders.POST("/reconcile", workOrderHandler.ReconcileAllStages)
		workorders.GET("/:id", workOrderHandler.GetWorkOrder)
		workorders.PATCH("/:id/advance", workOrderHandler.AdvanceStage)
		workorders.PATCH("/:id/retreat", workOrderHandler.RetreatStage)
		workorders.POST("/:id/diagnostic", workOrderHandler.SaveDiagnostic)
		workorders.POST("/:id/delivery", workOrderHandler.RegisterDelivery)
		workorders.PATCH("/:id/cancel", workOrderHandler.CancelWorkOrder)
		workorders.POST("/:id/issues", workOrderHandler.ReportUnforeseenIssue)
		workorders.POST("/:id/quote-links/repair", workOrderHandler.RepairQuoteLinks)
		workorders.GET("/:id/quotes", quoteHandler.ListQuotesByWorkOrder)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.SaveQuote)
	}
}
