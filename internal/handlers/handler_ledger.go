package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for a dealer's farmer ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// RegisterLedgerRoutes registers the dealer ledger routes on rg.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	dealers := rg.Group("/dealers/:dealer_id")
	{
		dealers.POST("/transactions", h.recordTransaction)
		dealers.GET("/transactions", h.listTransactions)
		dealers.GET("/transactions/:transaction_id", h.getTransaction)
		dealers.GET("/balances", h.listFarmerBalances)
		dealers.GET("/farmers/:farmer_id/balance", h.getFarmerBalance)
	}
}

// recordTransaction godoc
// @Summary Record a ledger transaction
// @Description Records an immutable credit or debit between the dealer and one of its farmers
// @Tags ledger
// @Accept json
// @Produce json
// @Param dealer_id path string true "Dealer ID"
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Transaction already exists"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /dealers/{dealer_id}/transactions [post]
func (h *ledgerHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealerID := c.Param("dealer_id")

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("dealer_id", dealerID), slog.String("farmer_id", req.FarmerID))
	logger.Info("Received request to record transaction", slog.String("transaction_type", string(req.TransactionType)))

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), dealerID, req, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a ledger transaction
// @Description Retrieves one transaction of the dealer's ledger. Farmers may read their own.
// @Tags ledger
// @Produce json
// @Param dealer_id path string true "Dealer ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /dealers/{dealer_id}/transactions/{transaction_id} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealerID := c.Param("dealer_id")
	transactionID := c.Param("transaction_id")

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("dealer_id", dealerID), slog.String("transaction_id", transactionID))

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), dealerID, transactionID, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List a dealer's transactions
// @Description Lists transactions newest first with optional farmer and date filters and token pagination
// @Tags ledger
// @Produce json
// @Param dealer_id path string true "Dealer ID"
// @Param farmerId query string false "Filter by farmer"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date inclusive (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /dealers/{dealer_id}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealerID := c.Param("dealer_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("dealer_id", dealerID))
	logger.Debug("Received request to list transactions", slog.Int("limit", params.Limit))

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), dealerID, params, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listFarmerBalances godoc
// @Summary Aggregate farmer balances
// @Description Folds the dealer's transactions into one balance per farmer, largest amount owed first
// @Tags ledger
// @Produce json
// @Param dealer_id path string true "Dealer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.DealerLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed stored transaction"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to aggregate balances"
// @Security BearerAuth
// @Router /dealers/{dealer_id}/balances [get]
func (h *ledgerHandler) listFarmerBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealerID := c.Param("dealer_id")

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for FarmerBalances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("dealer_id", dealerID))
	logger.Info("Received request to aggregate farmer balances")

	ledger, err := h.ledgerService.FarmerBalances(c.Request.Context(), dealerID, params, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to aggregate balances")
		return
	}

	logger.Info("Farmer balances aggregated", slog.Int("farmer_count", len(ledger.Balances)))
	c.JSON(http.StatusOK, dto.ToDealerLedgerResponse(ledger))
}

// getFarmerBalance godoc
// @Summary Get one farmer's balance
// @Description Returns the balance between a dealer and one farmer. Farmers may read their own balance.
// @Tags ledger
// @Produce json
// @Param dealer_id path string true "Dealer ID"
// @Param farmer_id path string true "Farmer ID"
// @Success 200 {object} dto.FarmerBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /dealers/{dealer_id}/farmers/{farmer_id}/balance [get]
func (h *ledgerHandler) getFarmerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealerID := c.Param("dealer_id")
	farmerID := c.Param("farmer_id")

	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("dealer_id", dealerID), slog.String("farmer_id", farmerID))

	balance, err := h.ledgerService.FarmerBalance(c.Request.Context(), dealerID, farmerID, principal)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToFarmerBalanceResponse(*balance))
}
