package public

import (
	"strconv"

	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest is one cart line.
type OrderItemRequest struct {
	ProductID uint                   `json:"product_id" binding:"required"`
	Quantity  int                    `json:"quantity" binding:"required"`
	Variant   map[string]interface{} `json:"variant"`
}

// CreateOrderRequest is the checkout form.
type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" binding:"required"`
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	ShippingMethod  string                 `json:"shipping_method"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	Discount        models.Money           `json:"discount"`
	Notes           string                 `json:"notes"`
}

// CreateOrder places an order from the caller's cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid order details")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		})
	}

	order, err := h.OrderService.CreateOrder(userID, service.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		ShippingMethod:  req.ShippingMethod,
		PaymentMethod:   req.PaymentMethod,
		Discount:        req.Discount,
		Notes:           req.Notes,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Order placed", order)
}

// ListOrders lists the caller's own orders.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	page, pageSize := shared.PaginationFromQuery(c)
	orders, total, err := h.OrderService.ListForCustomer(userID, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder loads one of the caller's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}

	order, err := h.OrderService.GetForCustomer(uint(orderID), userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrderRequest carries the optional cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder cancels one of the caller's orders while still eligible.
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}
	var req CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	order, svcErr := h.OrderService.CancelOrder(uint(orderID), userID, req.Reason)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Order cancelled", order)
}
