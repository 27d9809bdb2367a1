package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/flipzokart/api/internal/constants"

	"gorm.io/gorm"
)

// CustomerInfo is the contact snapshot frozen onto an order at checkout.
type CustomerInfo struct {
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`
}

// ShippingAddress is the destination address snapshot.
type ShippingAddress struct {
	Street     string `gorm:"not null" json:"street"`
	City       string `gorm:"not null" json:"city"`
	State      string `gorm:"not null" json:"state"`
	PostalCode string `gorm:"not null" json:"postal_code"`
	Country    string `gorm:"not null;default:'India'" json:"country"`
}

// ShippingInfo carries address, method and delivery bookkeeping.
type ShippingInfo struct {
	Address           ShippingAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Method            string          `gorm:"type:varchar(20);default:'standard'" json:"method"`
	Cost              Money           `gorm:"type:decimal(20,2);not null;default:0" json:"cost"`
	TrackingNumber    string          `gorm:"type:varchar(100)" json:"tracking_number"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery"`
	ActualDelivery    *time.Time      `json:"actual_delivery"`
}

// PaymentInfo carries method, gateway state and refund bookkeeping.
type PaymentInfo struct {
	Method        string     `gorm:"type:varchar(20);not null" json:"method"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TransactionID string     `gorm:"type:varchar(100)" json:"transaction_id"`
	Gateway       string     `gorm:"type:varchar(20)" json:"gateway"`
	PaidAt        *time.Time `json:"paid_at"`
	RefundedAt    *time.Time `json:"refunded_at"`
	RefundAmount  Money      `gorm:"type:decimal(20,2);not null;default:0" json:"refund_amount"`
	RefundReason  string     `gorm:"type:varchar(500)" json:"refund_reason"`
}

// Pricing is the order amount breakdown. Total and subtotal are derived; see
// Order.Recalculate.
type Pricing struct {
	Subtotal Money  `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	Discount Money  `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`
	Tax      Money  `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`
	Shipping Money  `gorm:"type:decimal(20,2);not null;default:0" json:"shipping"`
	Total    Money  `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	Currency string `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
}

// Order is a placed order with snapshot line items and a status trail.
type Order struct {
	ID                 uint               `gorm:"primarykey" json:"id"`
	OrderNumber        string             `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerID         uint               `gorm:"index;not null" json:"customer_id"`
	CustomerInfo       CustomerInfo       `gorm:"embedded;embeddedPrefix:customer_" json:"customer_info"`
	Items              []OrderItem        `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Shipping           ShippingInfo       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	Payment            PaymentInfo        `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Pricing            Pricing            `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing"`
	Status             string             `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	StatusHistory      []OrderStatusEntry `gorm:"foreignKey:OrderID" json:"status_history,omitempty"`
	Notes              string             `gorm:"type:varchar(1000)" json:"notes"`
	InternalNotes      string             `gorm:"type:varchar(2000)" json:"internal_notes"`
	Priority           string             `gorm:"type:varchar(10);default:'normal';index" json:"priority"`
	Source             string             `gorm:"type:varchar(10);default:'website'" json:"source"`
	Tags               StringArray        `gorm:"type:json" json:"tags"`
	EstimatedDelivery  *time.Time         `json:"estimated_delivery"`
	ActualDelivery     *time.Time         `json:"actual_delivery"`
	CancelledAt        *time.Time         `json:"cancelled_at"`
	CancellationReason string             `gorm:"type:varchar(500)" json:"cancellation_reason"`
	RefundedAt         *time.Time         `json:"refunded_at"`
	RefundReason       string             `gorm:"type:varchar(500)" json:"refund_reason"`
	CreatedAt          time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a frozen product snapshot; later catalog edits never touch it.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	Name      string         `gorm:"not null" json:"name"`
	SKU       string         `gorm:"not null" json:"sku"`
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Image     string         `gorm:"type:varchar(500)" json:"image"`
	Variant   JSON           `gorm:"type:json" json:"variant,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusEntry is one row of the status trail.
type OrderStatusEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Note      string    `gorm:"type:varchar(500)" json:"note,omitempty"`
	UpdatedBy uint      `gorm:"index" json:"updated_by,omitempty"`
}

// TableName sets the table name.
func (OrderStatusEntry) TableName() string {
	return "order_status_entries"
}

// Recalculate derives subtotal and total from the line items and the
// discount/tax/shipping inputs. Callers invoke it before every persist;
// nothing recomputes implicitly on save.
func (o *Order) Recalculate() {
	subtotal := NewMoneyFromInt(0)
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.UnitPrice.MulInt(int64(item.Quantity)))
	}
	o.Pricing.Subtotal = subtotal
	o.Pricing.Total = subtotal.
		Sub(o.Pricing.Discount).
		Add(o.Pricing.Tax).
		Add(o.Pricing.Shipping)
}

// AddStatusUpdate appends a history entry, overwrites the current status and
// stamps the matching terminal timestamp. A shipped update stamps
// Shipping.ActualDelivery. No transition is rejected here.
func (o *Order) AddStatusUpdate(status, note string, updatedBy uint, now time.Time) {
	o.StatusHistory = append(o.StatusHistory, OrderStatusEntry{
		OrderID:   o.ID,
		Status:    status,
		Timestamp: now,
		Note:      note,
		UpdatedBy: updatedBy,
	})
	o.Status = status

	switch status {
	case constants.OrderStatusShipped:
		t := now
		o.Shipping.ActualDelivery = &t
	case constants.OrderStatusDelivered:
		t := now
		o.ActualDelivery = &t
	case constants.OrderStatusCancelled:
		t := now
		o.CancelledAt = &t
	case constants.OrderStatusRefunded:
		t := now
		o.RefundedAt = &t
	}
}

// CanBeCancelled reports whether the order is still cancellable.
func (o *Order) CanBeCancelled() bool {
	switch o.Status {
	case constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled,
		constants.OrderStatusRefunded:
		return false
	}
	return true
}

// CanBeRefunded reports whether a refund is still possible.
func (o *Order) CanBeRefunded() bool {
	return o.Payment.Status == constants.PaymentStatusCompleted &&
		o.Status != constants.OrderStatusRefunded
}

// ItemCount sums line item quantities.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-readable unique order number from the
// current clock plus a random base36 suffix.
func GenerateOrderNumber(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderNumberAlphabet))))
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteByte(orderNumberAlphabet[n.Int64()])
	}
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), b.String())
}
