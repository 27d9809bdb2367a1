package service

import "errors"

// Sentinel errors the handlers map to HTTP responses. The lockout and
// blocked messages are surfaced to the client verbatim.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountLocked      = errors.New("Account is temporarily locked. Try again later.")
	ErrAccountBlocked     = errors.New("Your account has been blocked. Please contact support.")
	ErrEmailExists        = errors.New("An account with this email already exists")
	ErrInvalidResetToken  = errors.New("Password reset token is invalid or has expired")
	ErrPasswordTooShort   = errors.New("Password is too short")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRole        = errors.New("unknown role")

	ErrSlugExists       = errors.New("a product with this slug already exists")
	ErrInvalidDiscount  = errors.New("invalid discount rule")
	ErrCategoryNotFound = errors.New("category not found")

	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrProductUnavailable  = errors.New("product is not available for purchase")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrOrderNotRefundable  = errors.New("order is not eligible for refund")

	ErrInvalidAmount = errors.New("payment amount must be positive")
)
