package handlers

import (
	"context"
	"errors"
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for the work-order lifecycle.

type WorkOrderHandler struct {
	usecase   usecase.IWorkOrderUseCase
	reconcile usecase.IReconcileUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, reconcile usecase.IReconcileUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, reconcile: reconcile}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.ClientID, payload.VehicleID, payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) AdvanceStage(c *gin.Context) {
	h.patchStageByRequest(c, h.usecase.AdvanceStage)
}

func (h *WorkOrderHandler) RetreatStage(c *gin.Context) {
	h.patchStageByRequest(c, h.usecase.RetreatStage)
}

func (h *WorkOrderHandler) patchStageByRequest(
	c *gin.Context,
	mover func(ctx context.Context, id, user string) (entities.WorkOrder, error),
) {
	// The actor payload is optional on manual stage moves.
	var payload request.StageActionRequest
	_ = c.ShouldBindJSON(&payload)

	wo, err := mover(c.Request.Context(), c.Param("id"), payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) SaveDiagnostic(c *gin.Context) {
	var payload request.DiagnosticRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	items := make([]entities.RecommendedItem, 0, len(payload.RecommendedItems))
	for _, it := range payload.RecommendedItems {
		items = append(items, entities.RecommendedItem(it))
	}
	diag := entities.DiagnosticData{
		Summary:          payload.Summary,
		Type:             payload.Type,
		StaffIDs:         payload.StaffIDs,
		RecommendedItems: items,
	}

	wo, err := h.usecase.SaveDiagnostic(c.Request.Context(), c.Param("id"), diag, payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) RegisterDelivery(c *gin.Context) {
	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	delivery := entities.DeliveryInfo{
		DeliveredAt:         payload.DeliveredAt,
		ReceivedBy:          payload.ReceivedBy,
		Odometer:            payload.Odometer,
		Notes:               payload.Notes,
		NextMaintenanceDate: payload.NextMaintenanceDate,
		NextMaintenanceNote: payload.NextMaintenanceNote,
	}

	wo, err := h.usecase.RegisterDelivery(c.Request.Context(), c.Param("id"), delivery, payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	var payload request.CancelWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.CancelOrder(c.Request.Context(), c.Param("id"), payload.ResolveReason(), payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) ReportUnforeseenIssue(c *gin.Context) {
	var payload request.UnforeseenIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.ReportUnforeseenIssue(c.Request.Context(), c.Param("id"), payload.ResolveDescription(), payload.User)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) RepairQuoteLinks(c *gin.Context) {
	wo, err := h.usecase.RepairQuoteLinks(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) ReconcileAllStages(c *gin.Context) {
	res, err := h.reconcile.ReconcileAllStages(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidDiagnostic), errors.Is(err, usecase.ErrInvalidIssue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STAGE_TRANSITION", "Invalid stage transition", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
