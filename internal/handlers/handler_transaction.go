package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/internal/core/domain"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for the caller's ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	now                func() time.Time
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts, now: time.Now}
}

// registerTransactionRoutes registers all ledger routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txs := rg.Group("/transactions")
	{
		txs.GET("", h.listTransactions)
		txs.POST("", h.createTransaction)
		txs.GET("/summary", h.getSummary)
		txs.GET("/categories", h.getCategoryTotals)
		txs.GET("/recent", h.getRecentTransactions)
		txs.GET("/monthly", h.getMonthlyTransactions)
		txs.GET("/category-options", h.getCategoryOptions)
		txs.PUT("/:transactionID", h.updateTransaction)
		txs.PATCH("/:transactionID", h.updateTransaction)
		txs.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// sessionOrAbort returns the caller's session or writes a 401.
func sessionOrAbort(c *gin.Context, logger *slog.Logger) (domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		logger.Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return session, ok
}

// logDegraded records that a read was served from fallback data.
func logDegraded[T any](logger *slog.Logger, what string, r domain.Result[T]) {
	if r.IsDegraded() {
		logger.Warn("Serving fallback data", slog.String("read", what), slog.String("source", string(r.Source)), slog.Any("error", r.Err))
	}
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Lists the caller's transactions with optional search, type filter and sort.
// @Tags transactions
// @Produce  json
// @Param   search query string false "Case-insensitive match on description or category"
// @Param   type query string false "income, expense, buy or sell"
// @Param   sortBy query string false "date, amount or description" default(date)
// @Param   order query string false "asc or desc" default(desc)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	res := h.transactionService.ListTransactions(c.Request.Context(), session, params.ToQueryOptions())
	logDegraded(logger, "transactions", res)
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(res.Data),
		Provenance:   dto.ToProvenance(res),
	})
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), session, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// updateTransaction godoc
// @Summary Edit a ledger entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), session, transactionID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Param   transactionID path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), session, transactionID); err != nil {
		respondWithError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// getSummary godoc
// @Summary Ledger summary
// @Description Total income, total expenses, net amount and savings rate.
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	res := h.transactionService.GetSummary(c.Request.Context(), session)
	logDegraded(logger, "summary", res)
	c.JSON(http.StatusOK, dto.SummaryResponse{SummaryStats: res.Data, Provenance: dto.ToProvenance(res)})
}

// getCategoryTotals godoc
// @Summary Expense totals per category
// @Description Categorised expenses summed per category, largest first, plus the top category.
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.CategoryTotalsResponse
// @Security BearerAuth
// @Router /transactions/categories [get]
func (h *transactionHandler) getCategoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	res := h.transactionService.GetCategoryTotals(c.Request.Context(), session)
	logDegraded(logger, "category_totals", res)
	resp := dto.CategoryTotalsResponse{Categories: res.Data, Provenance: dto.ToProvenance(res)}
	if len(res.Data) > 0 {
		top := res.Data[0]
		resp.Top = &top
	}
	c.JSON(http.StatusOK, resp)
}

// getRecentTransactions godoc
// @Summary Recent ledger entries
// @Tags transactions
// @Produce  json
// @Param   days query int false "Trailing window in days" default(7)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions/recent [get]
func (h *transactionHandler) getRecentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	var params dto.RecentTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	res := h.transactionService.GetRecentTransactions(c.Request.Context(), session, params.Days)
	logDegraded(logger, "recent_transactions", res)
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(res.Data),
		Provenance:   dto.ToProvenance(res),
	})
}

// getMonthlyTransactions godoc
// @Summary One calendar month of the ledger
// @Tags transactions
// @Produce  json
// @Param   year query int false "Year, defaults to the current year"
// @Param   month query int false "Month 1-12, defaults to the current month"
// @Success 200 {object} dto.MonthlyTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions/monthly [get]
func (h *transactionHandler) getMonthlyTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	var params dto.MonthlyTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	year, month := params.Resolve(h.now())
	res := h.transactionService.GetMonthlyTransactions(c.Request.Context(), session, year, month)
	logDegraded(logger, "monthly_transactions", res)
	c.JSON(http.StatusOK, dto.ToMonthlyTransactionsResponse(res))
}

// getCategoryOptions godoc
// @Summary Category labels offered by the entry form
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.CategoryOptionsResponse
// @Security BearerAuth
// @Router /transactions/category-options [get]
func (h *transactionHandler) getCategoryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoryOptionsResponse{
		Expense: domain.ExpenseCategories,
		Income:  domain.IncomeCategories,
	})
}
