package repository

import (
	"testing"
	"time"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
)

func seedOrder(t *testing.T, repo OrderRepository, customerID uint, status, paymentStatus string, total float64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber: models.GenerateOrderNumber(createdAt),
		CustomerID:  customerID,
		CustomerInfo: models.CustomerInfo{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Phone:     "9999000011",
		},
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Widget", SKU: "WID-1", UnitPrice: models.NewMoneyFromFloat(total), Quantity: 1},
		},
		Status: status,
		Payment: models.PaymentInfo{
			Method: constants.PaymentMethodRazorpay,
			Status: paymentStatus,
		},
		Pricing: models.Pricing{
			Subtotal: models.NewMoneyFromFloat(total),
			Total:    models.NewMoneyFromFloat(total),
			Currency: "INR",
		},
		StatusHistory: []models.OrderStatusEntry{
			{Status: status, Timestamp: createdAt},
		},
		CreatedAt: createdAt,
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	created := seedOrder(t, repo, 7, constants.OrderStatusPending, constants.PaymentStatusPending, 499, time.Now())

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil {
		t.Fatal("expected order, got nil")
	}
	if got.OrderNumber != created.OrderNumber {
		t.Fatalf("order number = %q, want %q", got.OrderNumber, created.OrderNumber)
	}
	if len(got.Items) != 1 || len(got.StatusHistory) != 1 {
		t.Fatalf("items=%d history=%d, want 1 and 1", len(got.Items), len(got.StatusHistory))
	}

	byNumber, err := repo.GetByOrderNumber(created.OrderNumber)
	if err != nil {
		t.Fatalf("get by number: %v", err)
	}
	if byNumber == nil || byNumber.ID != created.ID {
		t.Fatalf("get by number returned %+v", byNumber)
	}
}

func TestOrderRepositoryGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	got, err := repo.GetByID(12345)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestOrderRepositoryGetByIDAndCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	created := seedOrder(t, repo, 7, constants.OrderStatusPending, constants.PaymentStatusPending, 100, time.Now())

	owned, err := repo.GetByIDAndCustomer(created.ID, 7)
	if err != nil {
		t.Fatalf("get owned: %v", err)
	}
	if owned == nil {
		t.Fatal("owner lookup should find the order")
	}

	other, err := repo.GetByIDAndCustomer(created.ID, 8)
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if other != nil {
		t.Fatal("lookup with a different customer must miss")
	}
}

func TestOrderRepositoryAppendStatusEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	created := seedOrder(t, repo, 3, constants.OrderStatusPending, constants.PaymentStatusPending, 100, time.Now())

	created.Status = constants.OrderStatusConfirmed
	if err := repo.Save(created); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.AppendStatusEntry(&models.OrderStatusEntry{
		OrderID:   created.ID,
		Status:    constants.OrderStatusConfirmed,
		Timestamp: time.Now(),
		Note:      "payment verified",
		UpdatedBy: 1,
	}); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", got.Status)
	}
	if len(got.StatusHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(got.StatusHistory))
	}
	if got.StatusHistory[1].Note != "payment verified" {
		t.Fatalf("second entry note = %q", got.StatusHistory[1].Note)
	}
}

func TestOrderRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	now := time.Now()
	seedOrder(t, repo, 1, constants.OrderStatusPending, constants.PaymentStatusPending, 100, now)
	seedOrder(t, repo, 1, constants.OrderStatusShipped, constants.PaymentStatusCompleted, 200, now)
	seedOrder(t, repo, 2, constants.OrderStatusShipped, constants.PaymentStatusCompleted, 300, now)

	orders, total, err := repo.List(OrderListFilter{Status: constants.OrderStatusShipped})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("shipped total=%d len=%d, want 2", total, len(orders))
	}

	orders, total, err = repo.List(OrderListFilter{CustomerID: 1})
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if total != 2 {
		t.Fatalf("customer 1 total = %d, want 2", total)
	}

	_, total, err = repo.List(OrderListFilter{PaymentStatus: constants.PaymentStatusCompleted, CustomerID: 2})
	if err != nil {
		t.Fatalf("list combined: %v", err)
	}
	if total != 1 {
		t.Fatalf("combined total = %d, want 1", total)
	}
}

func TestOrderRepositoryRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	base := time.Now().Add(-3 * time.Hour)
	seedOrder(t, repo, 1, constants.OrderStatusPending, constants.PaymentStatusPending, 100, base)
	seedOrder(t, repo, 1, constants.OrderStatusPending, constants.PaymentStatusPending, 200, base.Add(time.Hour))
	newest := seedOrder(t, repo, 1, constants.OrderStatusPending, constants.PaymentStatusPending, 300, base.Add(2*time.Hour))

	recent, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	if recent[0].ID != newest.ID {
		t.Fatalf("recent[0].ID = %d, want %d", recent[0].ID, newest.ID)
	}
}
