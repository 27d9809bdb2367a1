package public

import (
	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"

	"github.com/gin-gonic/gin"
)

// CreatePaymentOrderRequest asks the gateway for a payment order.
type CreatePaymentOrderRequest struct {
	Amount models.Money `json:"amount" binding:"required"`
}

// CreatePaymentOrder records a payment intent for the given amount. The
// response carries the receipt id and the amount in minor units, which the
// client forwards to the gateway checkout.
func (h *Handler) CreatePaymentOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Amount is required")
		return
	}

	intent, err := h.PaymentService.CreateIntent(userID, req.Amount)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Payment order created", intent)
}
