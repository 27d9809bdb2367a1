package service

import (
	"strings"
	"time"

	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderService owns order creation, lookup and status transitions.
type OrderService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewOrderService creates the order service.
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// OrderItemInput is one cart line in a checkout request.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Variant   map[string]interface{}
}

// CreateOrderInput is the checkout form.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress models.ShippingAddress
	ShippingMethod  string
	PaymentMethod   string
	Discount        models.Money
	Notes           string
	Source          string
}

// CreateOrder snapshots the cart into an order. Prices, names and SKUs are
// copied from the catalog at this moment; later product edits do not touch
// placed orders. Stock is not decremented here.
func (s *OrderService) CreateOrder(customerID uint, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	customer, err := s.userRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	now := s.now()
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.Status != constants.ProductStatusActive {
			return nil, ErrProductUnavailable
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			SKU:       product.SKU,
			UnitPrice: product.EffectivePrice(now),
			Quantity:  line.Quantity,
			Image:     firstImage(product.Images),
			Variant:   line.Variant,
		})
	}

	method := input.ShippingMethod
	if method == "" {
		method = constants.ShippingMethodStandard
	}
	shippingCost := models.NewMoneyFromFloat(s.cfg.Order.ShippingCosts[method])
	tax := s.taxFor(items)

	source := input.Source
	if source == "" {
		source = constants.OrderSourceWebsite
	}

	order := &models.Order{
		OrderNumber: models.GenerateOrderNumber(now),
		CustomerID:  customer.ID,
		CustomerInfo: models.CustomerInfo{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
			Phone:     customer.Phone,
		},
		Items: items,
		Shipping: models.ShippingInfo{
			Address: input.ShippingAddress,
			Method:  method,
			Cost:    shippingCost,
		},
		Payment: models.PaymentInfo{
			Method: input.PaymentMethod,
			Status: constants.PaymentStatusPending,
		},
		Pricing: models.Pricing{
			Discount: input.Discount,
			Tax:      tax,
			Shipping: shippingCost,
			Currency: s.currency(),
		},
		Status: constants.OrderStatusPending,
		StatusHistory: []models.OrderStatusEntry{
			{Status: constants.OrderStatusPending, Timestamp: now, Note: "Order placed"},
		},
		Notes:    strings.TrimSpace(input.Notes),
		Priority: constants.OrderPriorityNormal,
		Source:   source,
	}
	order.Recalculate()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	logger.Infow("order created",
		"order_number", order.OrderNumber,
		"customer_id", customer.ID,
		"total", order.Pricing.Total.String())
	return order, nil
}

func (s *OrderService) taxFor(items []models.OrderItem) models.Money {
	rate := s.cfg.Order.TaxRatePercent
	if rate <= 0 {
		return models.NewMoneyFromInt(0)
	}
	subtotal := models.NewMoneyFromInt(0)
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.MulInt(int64(item.Quantity)))
	}
	tax := subtotal.Decimal.
		Mul(decimal.NewFromFloat(rate)).
		Div(decimal.NewFromInt(100))
	return models.NewMoney(tax)
}

func (s *OrderService) currency() string {
	if c := strings.TrimSpace(s.cfg.Order.Currency); c != "" {
		return c
	}
	return "INR"
}

// GetForCustomer loads one order owned by the caller.
func (s *OrderService) GetForCustomer(orderID, customerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// GetByID loads one order for staff.
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListForCustomer lists the caller's own orders.
func (s *OrderService) ListForCustomer(customerID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.List(repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		CustomerID: customerID,
	})
}

// ListAdmin lists orders with the full admin filter.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateStatus applies a status transition. Any target status the enum
// knows is accepted, including backwards moves.
func (s *OrderService) UpdateStatus(orderID uint, status, note string, updatedBy uint) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	order.AddStatusUpdate(status, note, updatedBy, s.now())
	order.Recalculate()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	logger.Infow("order status updated",
		"order_number", order.OrderNumber,
		"status", status,
		"updated_by", updatedBy)
	return order, nil
}

// CancelOrder cancels a customer's own order while it is still eligible.
func (s *OrderService) CancelOrder(orderID, customerID uint, reason string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndCustomer(orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !order.CanBeCancelled() {
		return nil, ErrOrderNotCancellable
	}

	order.AddStatusUpdate(constants.OrderStatusCancelled, reason, customerID, s.now())
	order.CancellationReason = strings.TrimSpace(reason)
	order.Recalculate()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// MarkPaymentCompleted records a successful gateway capture.
func (s *OrderService) MarkPaymentCompleted(orderID uint, transactionID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	now := s.now()
	order.Payment.Status = constants.PaymentStatusCompleted
	order.Payment.TransactionID = transactionID
	order.Payment.PaidAt = &now
	order.Recalculate()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// RefundOrder records a refund on a completed payment.
func (s *OrderService) RefundOrder(orderID uint, amount models.Money, reason string, updatedBy uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !order.CanBeRefunded() {
		return nil, ErrOrderNotRefundable
	}

	now := s.now()
	if amount.IsZero() || amount.GreaterThan(order.Pricing.Total.Decimal) {
		amount = order.Pricing.Total
	}
	order.Payment.Status = constants.PaymentStatusRefunded
	order.Payment.RefundAmount = amount
	order.Payment.RefundReason = strings.TrimSpace(reason)
	order.Payment.RefundedAt = &now
	order.RefundReason = strings.TrimSpace(reason)
	order.AddStatusUpdate(constants.OrderStatusRefunded, reason, updatedBy, now)
	order.Recalculate()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

func firstImage(images models.StringArray) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
