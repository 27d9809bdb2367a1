package service

import (
	"strings"

	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService records gateway payment intents. The amount travels to
// the gateway in minor units (paise for INR).
type PaymentService struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewPaymentService creates the payment service.
func NewPaymentService(cfg *config.Config, db *gorm.DB) *PaymentService {
	return &PaymentService{cfg: cfg, db: db}
}

// CreateIntent persists a payment intent for the given amount.
func (s *PaymentService) CreateIntent(userID uint, amount models.Money) (*models.PaymentIntent, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	gateway := strings.TrimSpace(s.cfg.Payment.Gateway)
	if gateway == "" {
		gateway = "razorpay"
	}
	currency := strings.TrimSpace(s.cfg.Payment.Currency)
	if currency == "" {
		currency = "INR"
	}

	intent := &models.PaymentIntent{
		ReceiptID:   uuid.NewString(),
		UserID:      userID,
		AmountMinor: amount.MinorUnits(),
		Currency:    currency,
		Gateway:     gateway,
		Status:      "created",
	}
	if err := s.db.Create(intent).Error; err != nil {
		return nil, err
	}
	logger.Infow("payment intent created",
		"receipt_id", intent.ReceiptID,
		"amount_minor", intent.AmountMinor,
		"gateway", gateway)
	return intent, nil
}
