package admin

import (
	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// Stats serves the dashboard overview for the requested period.
func (h *Handler) Stats(c *gin.Context) {
	period := service.ParsePeriod(c.DefaultQuery("period", "30"))
	payload, err := h.DashboardService.GetStats(c.Request.Context(), period)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payload)
}

// Sales serves the sales analytics for the requested period.
func (h *Handler) Sales(c *gin.Context) {
	period := service.ParsePeriod(c.DefaultQuery("period", "30"))
	payload, err := h.DashboardService.GetSales(c.Request.Context(), period)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payload)
}

// Orders serves the order analytics for the requested period.
func (h *Handler) Orders(c *gin.Context) {
	period := service.ParsePeriod(c.DefaultQuery("period", "30"))
	payload, err := h.DashboardService.GetOrders(c.Request.Context(), period)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payload)
}

// Users serves the user analytics for the requested period.
func (h *Handler) Users(c *gin.Context) {
	period := service.ParsePeriod(c.DefaultQuery("period", "30"))
	payload, err := h.DashboardService.GetUsers(c.Request.Context(), period)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, payload)
}
