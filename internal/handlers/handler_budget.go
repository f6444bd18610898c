package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/svarno/svarno_backend/internal/core/domain"
	"github.com/svarno/svarno_backend/internal/core/ledger"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/middleware"
)

// budgetHandler handles HTTP requests for the caller's budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/overview", h.getOverview)
		budgets.PUT("/:budgetID", h.updateBudget)
		budgets.PATCH("/:budgetID", h.updateBudget)
		budgets.DELETE("/:budgetID", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets with usage
// @Description Lists the caller's budgets with usage percent, status and overage.
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	res := h.budgetService.GetBudgetOverview(c.Request.Context(), session)
	logDegraded(logger, "budgets", res)
	c.JSON(http.StatusOK, dto.ListBudgetsResponse{
		Budgets:    dto.ToBudgetResponses(res.Data.Budgets),
		Provenance: dto.ToProvenance(res),
	})
}

// getOverview godoc
// @Summary Overall budget usage
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.BudgetOverviewResponse
// @Security BearerAuth
// @Router /budgets/overview [get]
func (h *budgetHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	res := h.budgetService.GetBudgetOverview(c.Request.Context(), session)
	logDegraded(logger, "budget_overview", res)
	c.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(res))
}

// createBudget godoc
// @Summary Create a budget for a category
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Budget for category already exists"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create budget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), session, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, toTrackedBudget(budget))
}

// updateBudget godoc
// @Summary Change a budget's limit, spent amount or color
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Budget not found"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /budgets/{budgetID} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	budgetID := c.Param("budgetID")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update budget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), session, budgetID, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("budget_id", budgetID)), err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, toTrackedBudget(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param   budgetID path string true "Budget ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Budget not found"
// @Failure 502 {object} ErrorResponse "Store unavailable, nothing was changed"
// @Security BearerAuth
// @Router /budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	budgetID := c.Param("budgetID")

	if err := h.budgetService.DeleteBudget(c.Request.Context(), session, budgetID); err != nil {
		respondWithError(c, logger.With(slog.String("budget_id", budgetID)), err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

// toTrackedBudget reports a single budget without ledger-derived spending.
func toTrackedBudget(b *domain.Budget) dto.BudgetResponse {
	return dto.ToBudgetResponse(ledger.Track([]domain.Budget{*b}, nil)[0])
}
