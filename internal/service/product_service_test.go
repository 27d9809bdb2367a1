package service

import (
	"errors"
	"testing"
	"time"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"

	"gorm.io/gorm"
)

func newTestProductService(db *gorm.DB) *ProductService {
	return NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
}

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Trail Shoe", "trail-shoe"},
		{"punctuation runs", "Nike Air -- Max! 270", "nike-air-max-270"},
		{"leading and trailing junk", "  **Sale** Item  ", "sale-item"},
		{"digits kept", "iPhone 15 Pro", "iphone-15-pro"},
		{"already clean", "kettlebell", "kettlebell"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GenerateSlug(tc.in); got != tc.want {
				t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestProductCreateDerivesSlug(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	category := &models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	product, err := svc.Create(ProductInput{
		Name:        "Trail Shoe X1",
		Description: "grippy",
		Price:       models.NewMoneyFromFloat(2999),
		CategoryID:  category.ID,
		SKU:         "TSX1",
		Status:      constants.ProductStatusActive,
	}, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "trail-shoe-x1" {
		t.Fatalf("slug = %q, want trail-shoe-x1", product.Slug)
	}

	_, err = svc.Create(ProductInput{
		Name:        "Trail Shoe X1",
		Description: "grippy",
		Price:       models.NewMoneyFromFloat(2999),
		CategoryID:  category.ID,
		SKU:         "TSX1-B",
	}, 1)
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug error = %v, want ErrSlugExists", err)
	}
}

func TestProductCreateUnknownCategory(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	_, err := svc.Create(ProductInput{
		Name:        "Orphan",
		Description: "no category",
		Price:       models.NewMoneyFromFloat(100),
		CategoryID:  999,
		SKU:         "ORPH",
	}, 1)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("error = %v, want ErrCategoryNotFound", err)
	}
}

func TestProductCreateRejectsBadDiscount(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	category := &models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	_, err := svc.Create(ProductInput{
		Name:        "Bad Discount",
		Description: "x",
		Price:       models.NewMoneyFromFloat(100),
		CategoryID:  category.ID,
		SKU:         "BD-1",
		Discounts: []models.ProductDiscount{
			{Type: "bogus", Value: models.NewMoneyFromFloat(10), Active: true},
		},
	}, 1)
	if !errors.Is(err, ErrInvalidDiscount) {
		t.Fatalf("error = %v, want ErrInvalidDiscount", err)
	}
}

func TestGetPublicBySlugHidesDrafts(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	product := createTestProduct(t, db, "Trail Shoe", "trail-shoe", 2999)
	if err := db.Model(product).Update("status", constants.ProductStatusDraft).Error; err != nil {
		t.Fatalf("set draft: %v", err)
	}

	_, err := svc.GetPublicBySlug("trail-shoe")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetPublicBySlugDerivedFields(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	product := createTestProduct(t, db, "Trail Shoe", "trail-shoe", 800)
	updates := map[string]interface{}{
		"original_price": 1000,
		"stock":          3,
	}
	if err := db.Model(product).Updates(updates).Error; err != nil {
		t.Fatalf("set prices: %v", err)
	}
	discount := &models.ProductDiscount{
		ProductID: product.ID,
		Type:      constants.DiscountTypePercentage,
		Value:     models.NewMoneyFromFloat(25),
		Active:    true,
	}
	if err := db.Create(discount).Error; err != nil {
		t.Fatalf("create discount: %v", err)
	}

	view, err := svc.GetPublicBySlug("trail-shoe")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.EffectivePrice.String() != "600.00" {
		t.Fatalf("effective price = %s, want 600.00", view.EffectivePrice.String())
	}
	if view.DiscountPercentage != 20 {
		t.Fatalf("discount percentage = %d, want 20", view.DiscountPercentage)
	}
	if view.StockStatus != constants.StockStatusLowStock {
		t.Fatalf("stock status = %q, want low_stock", view.StockStatus)
	}
}

func TestListPublicOnlyActive(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	createTestProduct(t, db, "Active One", "active-one", 100)
	draft := createTestProduct(t, db, "Draft One", "draft-one", 100)
	if err := db.Model(draft).Update("status", constants.ProductStatusDraft).Error; err != nil {
		t.Fatalf("set draft: %v", err)
	}

	views, total, err := svc.ListPublic(repository.ProductListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(views) != 1 {
		t.Fatalf("total=%d len=%d, want 1", total, len(views))
	}
	if views[0].Slug != "active-one" {
		t.Fatalf("unexpected product %q", views[0].Slug)
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	product := createTestProduct(t, db, "Trail Shoe", "trail-shoe", 2999)

	updated, err := svc.Update(product.ID, ProductInput{
		Name:  "Trail Shoe v2",
		Price: models.NewMoneyFromFloat(3199),
		Stock: 12,
	}, 2)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Trail Shoe v2" || updated.Stock != 12 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.UpdatedByID != 2 {
		t.Fatalf("updated_by = %d, want 2", updated.UpdatedByID)
	}

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete error = %v, want ErrNotFound", err)
	}
}

func TestProductViewUsesServiceClock(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newTestProductService(db)

	product := createTestProduct(t, db, "Windowed", "windowed", 100)
	if err := db.Model(product).Update("original_price", 200).Error; err != nil {
		t.Fatalf("set original price: %v", err)
	}
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	discount := &models.ProductDiscount{
		ProductID: product.ID,
		Type:      constants.DiscountTypeFixed,
		Value:     models.NewMoneyFromFloat(40),
		StartDate: &start,
		EndDate:   &end,
		Active:    true,
	}
	if err := db.Create(discount).Error; err != nil {
		t.Fatalf("create discount: %v", err)
	}

	svc.now = fixedClock(start.Add(time.Hour))
	view, err := svc.GetPublicBySlug("windowed")
	if err != nil {
		t.Fatalf("get inside window: %v", err)
	}
	if view.EffectivePrice.String() != "60.00" {
		t.Fatalf("in-window price = %s, want 60.00", view.EffectivePrice.String())
	}

	svc.now = fixedClock(end.Add(time.Hour))
	view, err = svc.GetPublicBySlug("windowed")
	if err != nil {
		t.Fatalf("get outside window: %v", err)
	}
	if view.EffectivePrice.String() != "100.00" {
		t.Fatalf("out-of-window price = %s, want 100.00", view.EffectivePrice.String())
	}
}
