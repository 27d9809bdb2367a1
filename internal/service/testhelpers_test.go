package service

import (
	"testing"
	"time"

	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductDiscount{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEntry{},
		&models.PaymentIntent{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	cfg.Security.Lockout.MaxAttempts = 5
	cfg.Security.Lockout.LockHours = 2
	cfg.Security.Lockout.BcryptRounds = bcrypt.MinCost
	cfg.Security.ResetTokenTTL = 10
	cfg.Security.MinPasswordLen = 6
	cfg.Order.TaxRatePercent = 0
	cfg.Order.ShippingCosts = map[string]float64{
		constants.ShippingMethodStandard:  0,
		constants.ShippingMethodExpress:   99,
		constants.ShippingMethodOvernight: 249,
	}
	cfg.Order.Currency = "INR"
	cfg.Payment.Gateway = "razorpay"
	cfg.Payment.Currency = "INR"
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RoleCustomer,
		Phone:        "9999000011",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name, slug string, price float64) *models.Product {
	t.Helper()
	category := &models.Category{Name: "General", Slug: "general-" + slug, IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := &models.Product{
		Name:        name,
		Slug:        slug,
		Description: "test product",
		Price:       models.NewMoneyFromFloat(price),
		CategoryID:  category.ID,
		SKU:         "SKU-" + slug,
		Stock:       100,
		Status:      constants.ProductStatusActive,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(testConfig(), repository.NewUserRepository(db))
}
