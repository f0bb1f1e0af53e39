package handler

import (
	"strconv"

	"partner-commission-ledger/internal/adapter/http/dto"
	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"
	"partner-commission-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler serves the read side of a partner's commission wallet.
type PartnerHandler struct {
	walletSvc    ports.WalletService
	reconcileSvc ports.ReconciliationService
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(walletSvc ports.WalletService, reconcileSvc ports.ReconciliationService) *PartnerHandler {
	return &PartnerHandler{walletSvc: walletSvc, reconcileSvc: reconcileSvc}
}

// GetWallet handles GET /api/v1/partners/:id/wallet.
func (h *PartnerHandler) GetWallet(c *gin.Context) {
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	partner, err := h.walletSvc.GetWallet(c.Request.Context(), partnerID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWalletResponse(partner))
}

// ListTransactions handles GET /api/v1/partners/:id/transactions.
func (h *PartnerHandler) ListTransactions(c *gin.Context) {
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	params := ports.TransactionListParams{
		PartnerID: partnerID,
		Page:      page,
		PageSize:  pageSize,
	}
	if t := c.Query("type"); t != "" {
		txType := domain.TransactionType(t)
		params.Type = &txType
	}

	txns, total, err := h.walletSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.NewTransactionResponse(&txns[i]))
	}

	params.Normalize()
	response.Paginated(c, items, total, params.Page, params.PageSize)
}

// Reconcile handles GET /api/v1/partners/:id/reconciliation.
func (h *PartnerHandler) Reconcile(c *gin.Context) {
	partnerID, ok := partnerIDParam(c)
	if !ok {
		return
	}

	report, err := h.reconcileSvc.ReconcilePartner(c.Request.Context(), partnerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewReconciliationResponse(report))
}

func partnerIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("partner id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
