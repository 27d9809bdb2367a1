package admin

import (
	"strconv"

	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest is the admin create/update product form.
type ProductRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Slug              string                   `json:"slug"`
	Description       string                   `json:"description" binding:"required"`
	ShortDescription  string                   `json:"short_description"`
	Price             models.Money             `json:"price" binding:"required"`
	OriginalPrice     models.Money             `json:"original_price"`
	CategoryID        uint                     `json:"category_id" binding:"required"`
	Subcategory       string                   `json:"subcategory"`
	Brand             string                   `json:"brand"`
	SKU               string                   `json:"sku" binding:"required"`
	Images            []string                 `json:"images"`
	Tags              []string                 `json:"tags"`
	Specifications    map[string]interface{}   `json:"specifications"`
	Stock             int                      `json:"stock"`
	LowStockThreshold int                      `json:"low_stock_threshold"`
	TrackInventory    *bool                    `json:"track_inventory"`
	AllowBackorder    bool                     `json:"allow_backorder"`
	Status            string                   `json:"status"`
	Featured          bool                     `json:"featured"`
	Discounts         []models.ProductDiscount `json:"discounts"`
	Variants          []models.ProductVariant  `json:"variants"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:              r.Name,
		Slug:              r.Slug,
		Description:       r.Description,
		ShortDescription:  r.ShortDescription,
		Price:             r.Price,
		OriginalPrice:     r.OriginalPrice,
		CategoryID:        r.CategoryID,
		Subcategory:       r.Subcategory,
		Brand:             r.Brand,
		SKU:               r.SKU,
		Images:            r.Images,
		Tags:              r.Tags,
		Specifications:    r.Specifications,
		Stock:             r.Stock,
		LowStockThreshold: r.LowStockThreshold,
		TrackInventory:    r.TrackInventory,
		AllowBackorder:    r.AllowBackorder,
		Status:            r.Status,
		Featured:          r.Featured,
		Discounts:         r.Discounts,
		Variants:          r.Variants,
	}
}

// ListProducts lists the catalog for the admin panel, drafts included.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}

	products, total, err := h.ProductService.ListAdmin(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// AddProduct creates a product.
func (h *Handler) AddProduct(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid product details")
		return
	}

	product, err := h.ProductService.Create(req.toInput(), userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Product created", product)
}

// UpdateProduct edits a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid product details")
		return
	}

	product, svcErr := h.ProductService.Update(uint(productID), req.toInput(), userID)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Product updated", product)
}

// DeleteProduct soft-deletes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}
	if err := h.ProductService.Delete(uint(productID)); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Product deleted", nil)
}

// GetProduct loads one product regardless of status.
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}
	product, svcErr := h.ProductService.GetByID(uint(productID))
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.Success(c, product)
}

// CategoryRequest is the category create/update form.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// AddCategory creates a category.
func (h *Handler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid category details")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = service.GenerateSlug(req.Name)
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}
	if err := h.CategoryRepo.Create(category); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Category created", category)
}
