package handler

import (
	"context"
	"errors"
	"io"

	"partner-commission-ledger/internal/adapter/http/dto"
	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"
	"partner-commission-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler drives the order acceptance workflow.
type OrderHandler struct {
	orderSvc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// Accept handles POST /api/v1/orders/:id/accept.
func (h *OrderHandler) Accept(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, result, err := h.orderSvc.AcceptOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderActionResponse(order, result))
}

// Cancel handles POST /api/v1/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.close(c, h.orderSvc.CancelOrder)
}

// Reject handles POST /api/v1/orders/:id/reject.
func (h *OrderHandler) Reject(c *gin.Context) {
	h.close(c, h.orderSvc.RejectOrder)
}

type closeFunc func(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, *ports.LedgerResult, error)

func (h *OrderHandler) close(c *gin.Context, fn closeFunc) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	// The body is optional.
	var req dto.CloseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	order, result, err := fn(c.Request.Context(), orderID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderActionResponse(order, result))
}

func orderIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("order id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
