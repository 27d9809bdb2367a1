package admin

import (
	"strconv"

	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders lists orders with the admin filter set.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)
	filter := repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		OrderNumber:   c.Query("order_number"),
		Priority:      c.Query("priority"),
	}
	if raw := c.Query("customer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CustomerID = uint(id)
		}
	}

	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder loads one order for staff.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}
	order, svcErr := h.OrderService.GetByID(uint(orderID))
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest is the status transition form.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// UpdateOrderStatus applies a status transition.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	order, svcErr := h.OrderService.UpdateStatus(uint(orderID), req.Status, req.Note, userID)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Order status updated", order)
}

// RefundOrderRequest is the refund form.
type RefundOrderRequest struct {
	Amount models.Money `json:"amount"`
	Reason string       `json:"reason"`
}

// RefundOrder records a refund on a completed payment.
func (h *Handler) RefundOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}
	var req RefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid refund details")
		return
	}

	order, svcErr := h.OrderService.RefundOrder(uint(orderID), req.Amount, req.Reason, userID)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Order refunded", order)
}

// MarkOrderPaidRequest records a gateway capture.
type MarkOrderPaidRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// MarkOrderPaid marks an order's payment as completed.
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}
	var req MarkOrderPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Transaction id is required")
		return
	}

	order, svcErr := h.OrderService.MarkPaymentCompleted(uint(orderID), req.TransactionID)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Payment recorded", order)
}
