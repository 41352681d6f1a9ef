package handlers

import (
	"errors"
	"log"
	"net/url"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Pagination defaults for all product listing endpoints.
const (
	defaultPage   = 0
	defaultSize   = 5
	defaultSortBy = "id"
)

// ProductHandler handles HTTP requests for the product catalog.
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
// The static /search route has to come before the /:id parameter route.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/category/:category", h.HandleGetByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns one page of the catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	page, size, sortBy := pagingParams(c)

	result, err := h.service.GetAllProducts(page, size, sortBy)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return internalError(c, "Could not retrieve products", err)
	}
	return c.JSON(result)
}

// HandleSearchProducts returns one page of products whose name contains the
// keyword, case-insensitively. An empty keyword matches everything.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	page, size, sortBy := pagingParams(c)
	keyword := c.Query("keyword")

	result, err := h.service.SearchProducts(keyword, page, size, sortBy)
	if err != nil {
		log.Printf("Error searching products for %q: %v", keyword, err)
		return internalError(c, "Could not search products", err)
	}
	return c.JSON(result)
}

// HandleGetByCategory returns one page of products with an exact category match.
func (h *ProductHandler) HandleGetByCategory(c *fiber.Ctx) error {
	page, size, sortBy := pagingParams(c)

	// Fiber hands the path segment over still percent-encoded; categories
	// are free-form labels and may contain spaces.
	category := c.Params("category")
	if decoded, err := url.PathUnescape(category); err == nil {
		category = decoded
	}

	result, err := h.service.GetProductsByCategory(category, page, size, sortBy)
	if err != nil {
		log.Printf("Error listing products in category %q: %v", category, err)
		return internalError(c, "Could not retrieve products", err)
	}
	return c.JSON(result)
}

// HandleGetProductByID returns a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		return productError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct validates and creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var dto models.ProductDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.CreateProduct(&dto)
	if err != nil {
		return productError(c, err, "Could not create product")
	}
	return c.JSON(created)
}

// HandleUpdateProduct validates and fully replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	var dto models.ProductDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	updated, err := h.service.UpdateProduct(uint(id), &dto)
	if err != nil {
		return productError(c, err, "Could not update product")
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product and returns 204 on success.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	if err := h.service.DeleteProduct(uint(id)); err != nil {
		return productError(c, err, "Could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pagingParams reads page/size/sortBy with the documented defaults.
func pagingParams(c *fiber.Ctx) (page, size int, sortBy string) {
	page = c.QueryInt("page", defaultPage)
	if page < 0 {
		page = defaultPage
	}
	size = c.QueryInt("size", defaultSize)
	if size < 1 {
		size = defaultSize
	}
	sortBy = c.Query("sortBy", defaultSortBy)
	return page, size, sortBy
}

// productError maps catalog service errors to HTTP responses.
func productError(c *fiber.Ctx, err error, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return internalError(c, fallback, err)
	}
}

func internalError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
