package constants

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// OrderStatuses lists every valid order status.
func OrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded,
	}
}

// IsValidOrderStatus reports whether status belongs to the order status enum.
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Payment status constants
const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
)

// Payment method constants
const (
	PaymentMethodCOD      = "cod"
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodStripe   = "stripe"
	PaymentMethodPaypal   = "paypal"
)

// Shipping method constants
const (
	ShippingMethodStandard  = "standard"
	ShippingMethodExpress   = "express"
	ShippingMethodOvernight = "overnight"
)

// User role constants
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleSupport  = "support"
)

// Product status constants
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// Product stock status constants (derived, never persisted)
const (
	StockStatusInfinite   = "infinite"
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusInStock    = "in_stock"
)

// Product discount type constants
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Order priority constants
const (
	OrderPriorityLow    = "low"
	OrderPriorityNormal = "normal"
	OrderPriorityHigh   = "high"
	OrderPriorityUrgent = "urgent"
)

// Order source constants
const (
	OrderSourceWebsite = "website"
	OrderSourcePhone   = "phone"
	OrderSourceEmail   = "email"
	OrderSourceAdmin   = "admin"
)

// Permission resource names used by the admin permission gate.
const (
	PermDashboard = "dashboard"
	PermUsers     = "users"
	PermProducts  = "products"
	PermOrders    = "orders"
	PermPayments  = "payments"
	PermSettings  = "settings"
	PermMarketing = "marketing"
)
