package public

import (
	"strconv"

	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts serves the storefront catalog listing.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	products, total, err := h.ProductService.ListPublic(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct serves one product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	view, err := h.ProductService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, view)
}

// ListCategories serves the active category tree for navigation.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.ListCategories()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}
