package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/dto"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return respondBadRequest(c, "Product ID must be a number")
	}

	product, err := h.service.FindByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleListProducts retrieves one page of products. With a name query
// parameter the listing is filtered server-side by name.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	req := repositories.NewPageRequest(
		c.QueryInt("page", 0),
		c.QueryInt("size", repositories.DefaultPageSize),
		c.Query("sort"),
	)

	var (
		page repositories.Page[dto.ProductDTO]
		err  error
	)
	if name := c.Query("name"); name != "" {
		page, err = h.service.SearchByName(name, req)
	} else {
		page, err = h.service.FindAll(req)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// HandleCreateProduct creates a new product from the request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload dto.ProductDTO
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	created, err := h.service.Insert(payload)
	if err != nil {
		return respondError(c, err)
	}

	c.Location(fmt.Sprintf("/api/v1/products/%d", created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct overwrites an existing product's mutable fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return respondBadRequest(c, "Product ID must be a number")
	}

	var payload dto.ProductDTO
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return respondBadRequest(c, "Invalid request body")
	}

	updated, err := h.service.Update(uint(id), payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return respondBadRequest(c, "Product ID must be a number")
	}

	if err := h.service.DeleteByID(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
