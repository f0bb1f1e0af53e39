package handler

import (
	"partner-commission-ledger/internal/adapter/http/dto"
	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"
	"partner-commission-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommissionHandler prices orders without touching any wallet.
type CommissionHandler struct {
	commissionSvc ports.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler.
func NewCommissionHandler(commissionSvc ports.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionSvc: commissionSvc}
}

// Quote handles POST /api/v1/commission/quote.
func (h *CommissionHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	partnerID, err := uuid.Parse(req.PartnerID)
	if err != nil {
		response.Error(c, apperror.Validation("partner_id must be a UUID"))
		return
	}

	result, err := h.commissionSvc.CalculateCommissionForItems(
		c.Request.Context(),
		req.ToOrderItems(),
		domain.OrderType(req.OrderType),
		partnerID,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewQuoteResponse(result))
}
