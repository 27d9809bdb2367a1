package main

import (
	"time"

	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", Description: "Phones, audio and smart devices", SortOrder: 1, IsActive: true},
		{Name: "Fashion", Slug: "fashion", Description: "Clothing and footwear", SortOrder: 2, IsActive: true},
		{Name: "Home & Kitchen", Slug: "home-kitchen", Description: "Appliances and essentials", SortOrder: 3, IsActive: true},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"electronics", "fashion", "home-kitchen"}).Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	saleStart := time.Now().AddDate(0, 0, -1)
	saleEnd := time.Now().AddDate(0, 1, 0)

	products := []models.Product{
		{
			Name: "Aurora Wireless Earbuds",
			Slug: "aurora-wireless-earbuds",
			Description: "True wireless earbuds with active noise cancellation and a 30 hour case.",
			ShortDescription: "ANC earbuds, 30h battery",
			Price: models.NewMoneyFromInt(2499),
			OriginalPrice: models.NewMoneyFromInt(3999),
			CategoryID: categoryIDs["electronics"],
			Brand: "Aurora",
			SKU: "ELEC-EARBUD-001",
			Images: models.StringArray{"/uploads/aurora-earbuds.jpg"},
			Tags: models.StringArray{"audio", "wireless"},
			Stock: 120,
			Status: constants.ProductStatusActive,
			Featured: true,
			Discounts: []models.ProductDiscount{
				{Type: constants.DiscountTypePercentage, Value: models.NewMoneyFromInt(10), StartDate: &saleStart, EndDate: &saleEnd, Active: true},
			},
		},
		{
			Name: "Volt 20W Charging Brick",
			Slug: "volt-20w-charging-brick",
			Description: "Compact 20W USB-C fast charger with over-current protection.",
			ShortDescription: "20W USB-C charger",
			Price: models.NewMoneyFromInt(699),
			OriginalPrice: models.NewMoneyFromInt(999),
			CategoryID: categoryIDs["electronics"],
			Brand: "Volt",
			SKU: "ELEC-CHRG-002",
			Images: models.StringArray{"/uploads/volt-charger.jpg"},
			Tags: models.StringArray{"charging", "usb-c"},
			Stock: 300,
			Status: constants.ProductStatusActive,
		},
		{
			Name: "Trailline Canvas Sneakers",
			Slug: "trailline-canvas-sneakers",
			Description: "Lightweight canvas sneakers with a cushioned insole.",
			ShortDescription: "Everyday canvas sneakers",
			Price: models.NewMoneyFromInt(1299),
			OriginalPrice: models.NewMoneyFromInt(1299),
			CategoryID: categoryIDs["fashion"],
			Brand: "Trailline",
			SKU: "FASH-SNKR-001",
			Images: models.StringArray{"/uploads/trailline-sneakers.jpg"},
			Tags: models.StringArray{"footwear"},
			Stock: 80,
			Status: constants.ProductStatusActive,
			Variants: []models.ProductVariant{
				{Name: "UK 8", SKU: "FASH-SNKR-001-8", Price: models.NewMoneyFromInt(1299), Stock: 40},
				{Name: "UK 9", SKU: "FASH-SNKR-001-9", Price: models.NewMoneyFromInt(1299), Stock: 40},
			},
		},
		{
			Name: "Hearthware Cast Iron Skillet",
			Slug: "hearthware-cast-iron-skillet",
			Description: "Pre-seasoned 26cm cast iron skillet for stovetop and oven.",
			ShortDescription: "26cm cast iron skillet",
			Price: models.NewMoneyFromInt(1899),
			OriginalPrice: models.NewMoneyFromInt(2499),
			CategoryID: categoryIDs["home-kitchen"],
			Brand: "Hearthware",
			SKU: "HOME-SKLT-001",
			Images: models.StringArray{"/uploads/hearthware-skillet.jpg"},
			Tags: models.StringArray{"cookware"},
			Stock: 8,
			LowStockThreshold: 10,
			Status: constants.ProductStatusActive,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	stdLog.Printf("Seed finished")
}
