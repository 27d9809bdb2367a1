package models

import "time"

// PaymentIntent is the record persisted when the storefront asks for a
// gateway payment order. The gateway SDK call happens outside this service;
// only the intent bookkeeping lives here.
type PaymentIntent struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ReceiptID   string    `gorm:"uniqueIndex;not null" json:"receipt_id"`
	UserID      uint      `gorm:"index" json:"user_id,omitempty"`
	AmountMinor int64     `gorm:"not null" json:"amount"` // minor units (paise)
	Currency    string    `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	Gateway     string    `gorm:"type:varchar(20);not null" json:"gateway"`
	Status      string    `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (PaymentIntent) TableName() string {
	return "payment_intents"
}
