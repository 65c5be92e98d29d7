package api

import (
	"errors"
	"net/http"

	reqdto "pos-engine/internal/handler/dto/request"
	resdto "pos-engine/internal/handler/dto/response"
	"pos-engine/internal/handler/httperr"
	"pos-engine/internal/handler/middleware"
	"pos-engine/internal/usecase/commands"
	"pos-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RefundHandler struct {
	cmds commands.RefundCommands
	q    queries.TransactionQueries
}

func NewRefundHandler(cmds commands.RefundCommands, q queries.TransactionQueries) *RefundHandler {
	return &RefundHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description List ledger transactions, optionally narrowed by refund filters
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param date_from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param product_name query string false "Product name substring"
// @Param sku query string false "SKU substring"
// @Param category query string false "Exact category"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /transactions [get]
func (h *RefundHandler) ListTransactions(c *gin.Context) {
	var q reqdto.TransactionFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	f, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}
	txns, err := h.q.List(c.Request.Context(), f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list transactions", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resdto.FromTransactionList(txns)})
}

// @Summary Get transaction
// @Description Get a ledger transaction by ID
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *RefundHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	txn, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransaction(txn))
}

// @Summary Toggle refund item
// @Description Toggle an item in or out of the refund selection
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ToggleItemRequest true "Toggle item request"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} map[string]string
// @Router /refunds/selection [post]
func (h *RefundHandler) ToggleItem(c *gin.Context) {
	var req reqdto.ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.cmds.ToggleItem(req.TransactionID, req.ItemID)
	h.selectionResponse(c)
}

// @Summary Get refund selection
// @Description Get the current refund selection and its total amount
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SelectionResponse
// @Failure 500 {object} map[string]string
// @Router /refunds/selection [get]
func (h *RefundHandler) GetSelection(c *gin.Context) {
	h.selectionResponse(c)
}

func (h *RefundHandler) selectionResponse(c *gin.Context) {
	amount, err := h.cmds.Amount(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to calculate amount", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelection(h.cmds.SelectedItems(), amount))
}

// @Summary Process refund
// @Description Process the selected items into an immutable refund record
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessRefundRequest true "Process refund request"
// @Success 201 {object} resdto.RefundRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /refunds [post]
func (h *RefundHandler) Process(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ProcessRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	record, err := h.cmds.Process(c.Request.Context(), a, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptySelection):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No items selected", nil)
		case errors.Is(err, commands.ErrDuplicateRefund):
			httperr.AbortWithError(c, http.StatusConflict, err, "Refund already recorded", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Refund failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRefundRecord(record))
}

// @Summary Cancel refund selection
// @Description Clear the refund selection without processing
// @Tags refunds
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /refunds/selection [delete]
func (h *RefundHandler) CancelSelection(c *gin.Context) {
	h.cmds.Cancel()
	c.Status(http.StatusNoContent)
}
