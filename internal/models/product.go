package models

import (
	"math"
	"time"

	"github.com/flipzokart/api/internal/constants"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDiscount is one discount rule attached to a product. Only the first
// currently-active rule participates in the effective price.
type ProductDiscount struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	ProductID   uint       `gorm:"index;not null" json:"product_id"`
	Type        string     `gorm:"type:varchar(20);not null" json:"type"` // percentage / fixed
	Value       Money      `gorm:"type:decimal(20,2);not null;default:0" json:"value"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	MinQuantity int        `gorm:"not null;default:1" json:"min_quantity"`
	Active      bool       `gorm:"not null;default:false" json:"active"`
}

// TableName sets the table name.
func (ProductDiscount) TableName() string {
	return "product_discounts"
}

// InWindow reports whether the rule is active and within its date window.
func (d ProductDiscount) InWindow(now time.Time) bool {
	if !d.Active {
		return false
	}
	if d.StartDate != nil && d.StartDate.After(now) {
		return false
	}
	if d.EndDate != nil && d.EndDate.Before(now) {
		return false
	}
	return true
}

// ProductVariant is a sellable variation with its own SKU, price and stock.
type ProductVariant struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ProductID  uint   `gorm:"index;not null" json:"product_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	SKU        string `gorm:"uniqueIndex;not null" json:"sku"`
	Price      Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Stock      int    `gorm:"not null;default:0" json:"stock"`
	Image      string `gorm:"type:varchar(500)" json:"image"`
	Attributes JSON   `gorm:"type:json" json:"attributes"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}

// Product is a catalog entry. Orders never reference it live; line items are
// frozen snapshots taken at order time.
type Product struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	Name              string            `gorm:"type:varchar(200);not null" json:"name"`
	Slug              string            `gorm:"uniqueIndex;not null" json:"slug"`
	Description       string            `gorm:"type:varchar(2000);not null" json:"description"`
	ShortDescription  string            `gorm:"type:varchar(500)" json:"short_description"`
	Price             Money             `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OriginalPrice     Money             `gorm:"type:decimal(20,2);not null;default:0" json:"original_price"`
	CategoryID        uint              `gorm:"not null;index" json:"category_id"`
	Subcategory       string            `gorm:"type:varchar(100)" json:"subcategory"`
	Brand             string            `gorm:"type:varchar(100)" json:"brand"`
	SKU               string            `gorm:"uniqueIndex;not null" json:"sku"`
	Images            StringArray       `gorm:"type:json" json:"images"`
	Tags              StringArray       `gorm:"type:json" json:"tags"`
	Specifications    JSON              `gorm:"type:json" json:"specifications"`
	Stock             int               `gorm:"not null;default:0;index" json:"stock"`
	LowStockThreshold int               `gorm:"not null;default:10" json:"low_stock_threshold"`
	TrackInventory    bool              `gorm:"not null;default:true" json:"track_inventory"`
	AllowBackorder    bool              `gorm:"not null;default:false" json:"allow_backorder"`
	Status            string            `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Featured          bool              `gorm:"default:false;index" json:"featured"`
	RatingAverage     float64           `gorm:"not null;default:0" json:"rating_average"`
	RatingCount       int               `gorm:"not null;default:0" json:"rating_count"`
	CreatedByID       uint              `gorm:"index" json:"created_by"`
	UpdatedByID       uint              `json:"updated_by"`
	CreatedAt         time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`
	Discounts         []ProductDiscount `gorm:"foreignKey:ProductID" json:"discounts,omitempty"`
	Variants          []ProductVariant  `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Category          *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// EffectivePrice resolves the list price after the first currently-active
// discount. Discounts only apply while the original price is strictly above
// the list price; otherwise the list price stands as-is.
func (p *Product) EffectivePrice(now time.Time) Money {
	if p.OriginalPrice.IsZero() || !p.OriginalPrice.GreaterThan(p.Price.Decimal) {
		return p.Price
	}
	for _, d := range p.Discounts {
		if !d.InWindow(now) {
			continue
		}
		switch d.Type {
		case constants.DiscountTypePercentage:
			factor := decimal.NewFromInt(1).Sub(d.Value.Div(decimal.NewFromInt(100)))
			return NewMoney(p.Price.Mul(factor))
		case constants.DiscountTypeFixed:
			reduced := p.Price.Sub(d.Value)
			if reduced.Decimal.IsNegative() {
				return NewMoneyFromInt(0)
			}
			return reduced
		}
		break
	}
	return p.Price
}

// DiscountPercentage is the displayed markdown, computed from the list price
// against the original price rather than from any discount rule's own value.
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice.IsZero() || !p.OriginalPrice.GreaterThan(p.Price.Decimal) {
		return 0
	}
	original, _ := p.OriginalPrice.Float64()
	price, _ := p.Price.Float64()
	return int(math.Round((original - price) / original * 100))
}

// StockStatus derives the inventory flag for storefront display.
func (p *Product) StockStatus() string {
	if !p.TrackInventory {
		return constants.StockStatusInfinite
	}
	if p.Stock == 0 && !p.AllowBackorder {
		return constants.StockStatusOutOfStock
	}
	if p.Stock > 0 && p.Stock <= p.LowStockThreshold {
		return constants.StockStatusLowStock
	}
	return constants.StockStatusInStock
}
