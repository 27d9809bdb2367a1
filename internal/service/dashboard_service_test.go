package service

import (
	"context"
	"testing"
	"time"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"gorm.io/gorm"
)

func newTestDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repository.NewDashboardRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewUserRepository(db))
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{"30", 30},
		{"90", 90},
		{"365", 365},
		{"14", 14},
		{"", 30},
		{"abc", 30},
		{"-5", 30},
		{"0", 30},
	}
	for _, tc := range cases {
		if got := ParsePeriod(tc.in); got != tc.want {
			t.Fatalf("ParsePeriod(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func seedPaidOrder(t *testing.T, db *gorm.DB, customerID uint, total float64, paymentStatus string, createdAt time.Time) {
	t.Helper()
	order := &models.Order{
		OrderNumber: models.GenerateOrderNumber(createdAt),
		CustomerID:  customerID,
		CustomerInfo: models.CustomerInfo{
			FirstName: "A", LastName: "B", Email: "a@x.io", Phone: "1",
		},
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Widget", SKU: "W-1", UnitPrice: models.NewMoneyFromFloat(total), Quantity: 1},
		},
		Status:    constants.OrderStatusConfirmed,
		Payment:   models.PaymentInfo{Method: constants.PaymentMethodRazorpay, Status: paymentStatus},
		Pricing:   models.Pricing{Subtotal: models.NewMoneyFromFloat(total), Total: models.NewMoneyFromFloat(total), Currency: "INR"},
		CreatedAt: createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestGetStatsExcludesUnpaidRevenue(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	createTestUser(t, db, "a@x.io", "secret123")
	createTestProduct(t, db, "Widget", "widget", 100)

	seedPaidOrder(t, db, 1, 400, constants.PaymentStatusCompleted, now.Add(-2*time.Hour))
	seedPaidOrder(t, db, 1, 999, constants.PaymentStatusPending, now.Add(-2*time.Hour))
	seedPaidOrder(t, db, 1, 100, constants.PaymentStatusCompleted, now.AddDate(0, 0, -10))

	stats, err := svc.GetStats(context.Background(), 30)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.Totals.Revenue != 500 {
		t.Fatalf("total revenue = %v, want 500 (unpaid excluded)", stats.Totals.Revenue)
	}
	if stats.Totals.Orders != 3 {
		t.Fatalf("total orders = %v, want 3 (counts are payment-agnostic)", stats.Totals.Orders)
	}
	if stats.Today.Revenue != 400 {
		t.Fatalf("today revenue = %v, want 400", stats.Today.Revenue)
	}
	if stats.ThisMonth.Revenue != 500 {
		t.Fatalf("month revenue = %v, want 500", stats.ThisMonth.Revenue)
	}
	if len(stats.RecentOrders) != 3 {
		t.Fatalf("recent orders = %d, want 3", len(stats.RecentOrders))
	}
	if stats.SeriesBucket != "daily" {
		t.Fatalf("series bucket = %q, want daily for 30 days", stats.SeriesBucket)
	}
	var seriesRevenue float64
	for _, point := range stats.Series {
		seriesRevenue += point.Revenue
	}
	if seriesRevenue != 500 {
		t.Fatalf("series revenue = %v, want 500", seriesRevenue)
	}
	if stats.StatusCounts[constants.OrderStatusConfirmed] != 3 {
		t.Fatalf("status counts = %v", stats.StatusCounts)
	}
	if stats.PaymentCounts[constants.PaymentMethodRazorpay] != 3 {
		t.Fatalf("payment counts = %v", stats.PaymentCounts)
	}
	if stats.PeriodDays != 30 {
		t.Fatalf("period days = %d", stats.PeriodDays)
	}
}

func TestGetStatsMonthlyBucketForLongPeriods(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)
	seedPaidOrder(t, db, 1, 100, constants.PaymentStatusCompleted, now.AddDate(0, -2, 0))
	seedPaidOrder(t, db, 1, 200, constants.PaymentStatusCompleted, now.AddDate(0, 0, -1))

	stats, err := svc.GetStats(context.Background(), 365)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.SeriesBucket != "monthly" {
		t.Fatalf("series bucket = %q, want monthly", stats.SeriesBucket)
	}
	if len(stats.Series) != 2 {
		t.Fatalf("series = %d buckets, want 2", len(stats.Series))
	}
	if stats.Series[0].Bucket != "2026-06" {
		t.Fatalf("first bucket = %q, want 2026-06", stats.Series[0].Bucket)
	}
}

func TestGetStatsLowStockCount(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)
	svc.now = fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))

	low := createTestProduct(t, db, "Low", "low", 100)
	if err := db.Model(low).Updates(map[string]interface{}{"stock": 2, "low_stock_threshold": 5}).Error; err != nil {
		t.Fatalf("set stock: %v", err)
	}
	createTestProduct(t, db, "Healthy", "healthy", 100)

	stats, err := svc.GetStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.LowStockCount != 1 {
		t.Fatalf("low stock count = %d, want 1", stats.LowStockCount)
	}
}

func TestGetSalesTopSelling(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	mk := func(productID uint, name string, qty int) {
		order := &models.Order{
			OrderNumber:  models.GenerateOrderNumber(now),
			CustomerID:   1,
			CustomerInfo: models.CustomerInfo{FirstName: "A", LastName: "B", Email: "a@x.io", Phone: "1"},
			Items: []models.OrderItem{
				{ProductID: productID, Name: name, SKU: name, UnitPrice: models.NewMoneyFromFloat(10), Quantity: qty},
			},
			Status:    constants.OrderStatusConfirmed,
			Payment:   models.PaymentInfo{Method: constants.PaymentMethodCOD, Status: constants.PaymentStatusCompleted},
			Pricing:   models.Pricing{Currency: "INR"},
			CreatedAt: now.Add(-time.Hour),
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
	mk(1, "Alpha", 2)
	mk(2, "Beta", 7)
	mk(1, "Alpha", 3)

	sales, err := svc.GetSales(context.Background(), 30)
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(sales.TopSelling) != 2 {
		t.Fatalf("top selling = %d entries, want 2", len(sales.TopSelling))
	}
	if sales.TopSelling[0].ProductID != 2 || sales.TopSelling[0].TotalSold != 7 {
		t.Fatalf("top entry = %+v, want Beta with 7", sales.TopSelling[0])
	}
	if sales.TopSelling[1].TotalSold != 5 {
		t.Fatalf("second entry sold = %d, want 5", sales.TopSelling[1].TotalSold)
	}
}

func TestGetUsersAnalytics(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	customer := createTestUser(t, db, "c@x.io", "secret123")
	_ = customer
	staff := createTestUser(t, db, "s@x.io", "secret123")
	if err := db.Model(staff).Update("role", constants.RoleSupport).Error; err != nil {
		t.Fatalf("set role: %v", err)
	}

	payload, err := svc.GetUsers(context.Background(), 30)
	if err != nil {
		t.Fatalf("users analytics: %v", err)
	}
	if payload.RoleCounts[constants.RoleCustomer] != 1 || payload.RoleCounts[constants.RoleSupport] != 1 {
		t.Fatalf("role counts = %v", payload.RoleCounts)
	}
	if len(payload.RecentUsers) != 2 {
		t.Fatalf("recent users = %d, want 2", len(payload.RecentUsers))
	}
}

func TestGetOrdersAnalytics(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestDashboardService(db)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	seedPaidOrder(t, db, 1, 400, constants.PaymentStatusCompleted, now.AddDate(0, 0, -2))
	seedPaidOrder(t, db, 2, 150, constants.PaymentStatusPending, now.AddDate(0, 0, -2))
	seedPaidOrder(t, db, 3, 100, constants.PaymentStatusPending, now.AddDate(0, 0, -40))

	payload, err := svc.GetOrders(context.Background(), 30)
	if err != nil {
		t.Fatalf("orders analytics: %v", err)
	}
	if len(payload.Trend) != 1 {
		t.Fatalf("trend buckets = %d, want 1", len(payload.Trend))
	}
	if payload.Trend[0].Orders != 2 {
		t.Fatalf("trend orders = %d, want 2", payload.Trend[0].Orders)
	}
	if payload.Trend[0].Revenue != 550 {
		t.Fatalf("trend revenue = %v, want 550 (unpaid included)", payload.Trend[0].Revenue)
	}
	if payload.StatusCounts[constants.OrderStatusConfirmed] != 3 {
		t.Fatalf("status counts = %v", payload.StatusCounts)
	}
	if payload.PaymentCounts[constants.PaymentMethodRazorpay] != 3 {
		t.Fatalf("payment counts = %v", payload.PaymentCounts)
	}
}
