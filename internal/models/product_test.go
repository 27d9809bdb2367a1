package models

import (
	"testing"
	"time"

	"github.com/flipzokart/api/internal/constants"
)

func activeDiscount(kind string, value int64) ProductDiscount {
	return ProductDiscount{Type: kind, Value: NewMoneyFromInt(value), Active: true}
}

func TestEffectivePricePercentageDiscount(t *testing.T) {
	p := &Product{
		Price:         NewMoneyFromInt(800),
		OriginalPrice: NewMoneyFromInt(1000),
		Discounts:     []ProductDiscount{activeDiscount(constants.DiscountTypePercentage, 25)},
	}
	if got := p.EffectivePrice(time.Now()); got.String() != "600.00" {
		t.Fatalf("expected 600.00, got %s", got)
	}
	// Displayed percentage comes from list vs original price, not the rule.
	if got := p.DiscountPercentage(); got != 20 {
		t.Fatalf("expected discount percentage 20, got %d", got)
	}
}

func TestEffectivePriceFixedDiscountFloorsAtZero(t *testing.T) {
	p := &Product{
		Price:         NewMoneyFromInt(100),
		OriginalPrice: NewMoneyFromInt(200),
		Discounts:     []ProductDiscount{activeDiscount(constants.DiscountTypeFixed, 150)},
	}
	if got := p.EffectivePrice(time.Now()); got.String() != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestEffectivePriceNoActiveDiscount(t *testing.T) {
	p := &Product{
		Price:         NewMoneyFromInt(100),
		OriginalPrice: NewMoneyFromInt(200),
		Discounts:     []ProductDiscount{{Type: constants.DiscountTypePercentage, Value: NewMoneyFromInt(50), Active: false}},
	}
	if got := p.EffectivePrice(time.Now()); got.String() != "100.00" {
		t.Fatalf("expected list price 100.00, got %s", got)
	}
}

func TestEffectivePriceIgnoredWhenOriginalNotAbovePrice(t *testing.T) {
	// Original price at or below list price disables discounting entirely.
	p := &Product{
		Price:         NewMoneyFromInt(100),
		OriginalPrice: NewMoneyFromInt(100),
		Discounts:     []ProductDiscount{activeDiscount(constants.DiscountTypePercentage, 50)},
	}
	if got := p.EffectivePrice(time.Now()); got.String() != "100.00" {
		t.Fatalf("expected 100.00, got %s", got)
	}

	p.OriginalPrice = NewMoneyFromInt(0)
	if got := p.EffectivePrice(time.Now()); got.String() != "100.00" {
		t.Fatalf("expected 100.00 for missing original price, got %s", got)
	}
	if p.DiscountPercentage() != 0 {
		t.Fatalf("expected 0%% for missing original price")
	}
}

func TestEffectivePriceWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	inWindow := activeDiscount(constants.DiscountTypePercentage, 10)
	inWindow.StartDate = &past
	inWindow.EndDate = &future

	expired := activeDiscount(constants.DiscountTypePercentage, 50)
	expiredEnd := now.AddDate(0, 0, -1)
	expired.EndDate = &expiredEnd

	p := &Product{
		Price:         NewMoneyFromInt(100),
		OriginalPrice: NewMoneyFromInt(200),
		Discounts:     []ProductDiscount{expired, inWindow},
	}
	// The expired rule is skipped; the first in-window rule wins.
	if got := p.EffectivePrice(now); got.String() != "90.00" {
		t.Fatalf("expected 90.00, got %s", got)
	}
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name           string
		track          bool
		stock          int
		threshold      int
		allowBackorder bool
		want           string
	}{
		{"untracked", false, 0, 10, false, constants.StockStatusInfinite},
		{"out of stock", true, 0, 10, false, constants.StockStatusOutOfStock},
		{"zero with backorder", true, 0, 10, true, constants.StockStatusInStock},
		{"low", true, 5, 10, false, constants.StockStatusLowStock},
		{"at threshold", true, 10, 10, false, constants.StockStatusLowStock},
		{"healthy", true, 50, 10, false, constants.StockStatusInStock},
	}
	for _, tc := range cases {
		p := &Product{
			TrackInventory:    tc.track,
			Stock:             tc.stock,
			LowStockThreshold: tc.threshold,
			AllowBackorder:    tc.allowBackorder,
		}
		if got := p.StockStatus(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestUserIsLocked(t *testing.T) {
	now := time.Now()
	until := now.Add(time.Hour)
	u := &User{LockUntil: &until}
	if !u.IsLocked(now) {
		t.Fatalf("expected locked")
	}
	expired := now.Add(-time.Minute)
	u.LockUntil = &expired
	if u.IsLocked(now) {
		t.Fatalf("expected unlocked after expiry")
	}
	u.LockUntil = nil
	if u.IsLocked(now) {
		t.Fatalf("expected unlocked with nil lock")
	}
}

func TestMoneyMinorUnits(t *testing.T) {
	if got := NewMoneyFromFloat(499.99).MinorUnits(); got != 49999 {
		t.Fatalf("expected 49999, got %d", got)
	}
	if got := NewMoneyFromInt(100).MinorUnits(); got != 10000 {
		t.Fatalf("expected 10000, got %d", got)
	}
}
