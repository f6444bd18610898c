package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/svarno/svarno_backend/internal/core/ports/services"
	"github.com/svarno/svarno_backend/internal/dto"
	"github.com/svarno/svarno_backend/internal/middleware"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Authenticated home page
// @Description Portfolio, recent transactions, budgets, learning progress, insights and quick stats. Each card carries its own provenance.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionOrAbort(c, logger)
	if !ok {
		return
	}
	d, err := h.dashboardService.GetDashboard(c.Request.Context(), session)
	if err != nil {
		respondWithError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
