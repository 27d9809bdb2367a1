package service

import (
	"strings"
	"time"
	"unicode"

	"github.com/flipzokart/api/internal/constants"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
)

// ProductService owns catalog reads and admin catalog writes.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewProductService creates the catalog service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// ProductView is a product enriched with the derived storefront fields.
type ProductView struct {
	models.Product
	EffectivePrice     models.Money `json:"effective_price"`
	DiscountPercentage int          `json:"discount_percentage"`
	StockStatus        string       `json:"stock_status"`
}

func (s *ProductService) view(product models.Product) ProductView {
	return ProductView{
		Product:            product,
		EffectivePrice:     product.EffectivePrice(s.now()),
		DiscountPercentage: product.DiscountPercentage(),
		StockStatus:        product.StockStatus(),
	}
}

// ListPublic lists active products for the storefront.
func (s *ProductService) ListPublic(filter repository.ProductListFilter) ([]ProductView, int64, error) {
	filter.Status = constants.ProductStatusActive
	filter.WithCategory = true
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.view(p))
	}
	return views, total, nil
}

// GetPublicBySlug loads one active product for the storefront.
func (s *ProductService) GetPublicBySlug(slug string) (*ProductView, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != constants.ProductStatusActive {
		return nil, ErrNotFound
	}
	view := s.view(*product)
	return &view, nil
}

// ListAdmin lists products for the admin panel, drafts included.
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]ProductView, int64, error) {
	filter.WithCategory = true
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.view(p))
	}
	return views, total, nil
}

// GetByID loads one product regardless of status.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ProductInput holds the admin create/update form.
type ProductInput struct {
	Name              string
	Slug              string
	Description       string
	ShortDescription  string
	Price             models.Money
	OriginalPrice     models.Money
	CategoryID        uint
	Subcategory       string
	Brand             string
	SKU               string
	Images            []string
	Tags              []string
	Specifications    map[string]interface{}
	Stock             int
	LowStockThreshold int
	TrackInventory    *bool
	AllowBackorder    bool
	Status            string
	Featured          bool
	Discounts         []models.ProductDiscount
	Variants          []models.ProductVariant
}

// Create inserts a product. Slug derivation happens here, before persist,
// never inside a save hook.
func (s *ProductService) Create(input ProductInput, createdBy uint) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if err := validateDiscounts(input.Discounts); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = GenerateSlug(input.Name)
	}
	taken, err := s.productRepo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugExists
	}

	status := input.Status
	if status == "" {
		status = constants.ProductStatusDraft
	}
	trackInventory := true
	if input.TrackInventory != nil {
		trackInventory = *input.TrackInventory
	}
	lowStockThreshold := input.LowStockThreshold
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}

	product := &models.Product{
		Name:              strings.TrimSpace(input.Name),
		Slug:              slug,
		Description:       input.Description,
		ShortDescription:  input.ShortDescription,
		Price:             input.Price,
		OriginalPrice:     input.OriginalPrice,
		CategoryID:        input.CategoryID,
		Subcategory:       input.Subcategory,
		Brand:             input.Brand,
		SKU:               strings.TrimSpace(input.SKU),
		Images:            input.Images,
		Tags:              input.Tags,
		Specifications:    input.Specifications,
		Stock:             input.Stock,
		LowStockThreshold: lowStockThreshold,
		TrackInventory:    trackInventory,
		AllowBackorder:    input.AllowBackorder,
		Status:            status,
		Featured:          input.Featured,
		CreatedByID:       createdBy,
		Discounts:         input.Discounts,
		Variants:          input.Variants,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edits a product in place.
func (s *ProductService) Update(id uint, input ProductInput, updatedBy uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := validateDiscounts(input.Discounts); err != nil {
		return nil, err
	}

	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != product.Slug {
		taken, err := s.productRepo.SlugExists(slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
		product.Slug = slug
	}
	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = input.CategoryID
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	product.ShortDescription = input.ShortDescription
	if !input.Price.IsZero() {
		product.Price = input.Price
	}
	product.OriginalPrice = input.OriginalPrice
	product.Subcategory = input.Subcategory
	product.Brand = input.Brand
	if sku := strings.TrimSpace(input.SKU); sku != "" {
		product.SKU = sku
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Specifications != nil {
		product.Specifications = input.Specifications
	}
	product.Stock = input.Stock
	if input.LowStockThreshold > 0 {
		product.LowStockThreshold = input.LowStockThreshold
	}
	if input.TrackInventory != nil {
		product.TrackInventory = *input.TrackInventory
	}
	product.AllowBackorder = input.AllowBackorder
	if input.Status != "" {
		product.Status = input.Status
	}
	product.Featured = input.Featured
	product.UpdatedByID = updatedBy
	if input.Discounts != nil {
		product.Discounts = input.Discounts
	}
	if input.Variants != nil {
		product.Variants = input.Variants
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product.
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.productRepo.Delete(id)
}

// ListCategories lists the active categories for navigation.
func (s *ProductService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.ListActive()
}

func validateDiscounts(discounts []models.ProductDiscount) error {
	for _, d := range discounts {
		if d.Type != constants.DiscountTypePercentage && d.Type != constants.DiscountTypeFixed {
			return ErrInvalidDiscount
		}
		if d.Value.IsNegative() {
			return ErrInvalidDiscount
		}
	}
	return nil
}

// GenerateSlug lowercases the name and collapses every non-alphanumeric
// run into a single hyphen.
func GenerateSlug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
