package handlers

import (
	"errors"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/pagination"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles product catalog and point-of-sale endpoints
type StoreHandler struct {
	storeService *services.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// ListProducts returns the tenant's active products
// @Summary List products
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *StoreHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.storeService.ListProducts(middleware.TenantID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}
	return response.Success(c, "Products retrieved", products)
}

// CreateProduct adds a product to the catalog
// @Summary Create product
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProductInput true "Product"
// @Success 201 {object} response.Response
// @Router /products [post]
func (h *StoreHandler) CreateProduct(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" || input.Price <= 0 {
		return response.BadRequest(c, "Name and price are required")
	}

	product, err := h.storeService.CreateProduct(middleware.TenantID(c), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create product")
	}
	return response.Created(c, "Product created", product)
}

// UpdateProduct modifies a product
// @Summary Update product
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param body body services.ProductInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *StoreHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid product ID")
	}

	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.storeService.UpdateProduct(middleware.TenantID(c), uint(id), &input)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to update product")
	}
	return response.Success(c, "Product updated", product)
}

// DeleteProduct retires a product
// @Summary Delete product
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *StoreHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid product ID")
	}

	if err := h.storeService.DeleteProduct(middleware.TenantID(c), uint(id)); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.InternalServerError(c, "Failed to delete product")
	}
	return response.Success(c, "Product deleted", nil)
}

// Checkout records a point-of-sale transaction
// @Summary Checkout sale
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CheckoutInput true "Cart"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /sales/checkout [post]
func (h *StoreHandler) Checkout(c *fiber.Ctx) error {
	var input services.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sale, err := h.storeService.Checkout(middleware.TenantID(c), middleware.UserID(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Cart must have items and a payment method")
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			return response.UnprocessableEntity(c, "Insufficient stock for one or more items")
		default:
			return response.InternalServerError(c, "Checkout failed")
		}
	}
	return response.Created(c, "Sale recorded", sale)
}

// ListSales returns the tenant's sales, newest first
// @Summary List sales
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /sales [get]
func (h *StoreHandler) ListSales(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	sales, total, err := h.storeService.ListSales(middleware.TenantID(c), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list sales")
	}
	return response.Success(c, "Sales retrieved", pagination.NewResponse(sales, params, total))
}
