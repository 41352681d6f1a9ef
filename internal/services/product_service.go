package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// Catalog event types published on product mutations.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes catalog change events. Implemented by the
// RabbitMQ client; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// ProductService handles business logic related to products: validation,
// DTO/entity mapping, pagination and catalog event publishing.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case catalog events are skipped.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  models.NewValidator(),
	}
}

// GetAllProducts retrieves one page of products sorted ascending by sortBy.
// An out-of-range page yields empty content, not an error.
func (s *ProductService) GetAllProducts(page, size int, sortBy string) (*models.ProductPage, error) {
	products, total, err := s.repo.FindPaged(page, size, sortBy)
	if err != nil {
		return nil, err
	}
	return buildPage(products, total, page, size), nil
}

// SearchProducts retrieves one page of products whose name contains the
// keyword as a case-insensitive substring. An empty keyword matches all.
func (s *ProductService) SearchProducts(keyword string, page, size int, sortBy string) (*models.ProductPage, error) {
	products, total, err := s.repo.SearchByName(keyword, page, size, sortBy)
	if err != nil {
		return nil, err
	}
	return buildPage(products, total, page, size), nil
}

// GetProductsByCategory retrieves one page of products whose category
// matches exactly (case-sensitive).
func (s *ProductService) GetProductsByCategory(category string, page, size int, sortBy string) (*models.ProductPage, error) {
	products, total, err := s.repo.FindByCategory(category, page, size, sortBy)
	if err != nil {
		return nil, err
	}
	return buildPage(products, total, page, size), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.ProductDTO, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return mapToDTO(product), nil
}

// CreateProduct validates the DTO, persists a new product and returns the
// DTO with the store-assigned ID. Any ID in the input is ignored.
func (s *ProductService) CreateProduct(dto *models.ProductDTO) (*models.ProductDTO, error) {
	if err := s.validateDTO(dto); err != nil {
		return nil, err
	}

	product := mapToEntity(dto)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	result := mapToDTO(product)
	s.publishEvent(EventProductCreated, result)
	return result, nil
}

// UpdateProduct overwrites every mutable field of an existing product with
// the DTO's fields. The product's ID never changes.
func (s *ProductService) UpdateProduct(id uint, dto *models.ProductDTO) (*models.ProductDTO, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
		}
		return nil, err
	}

	if err := s.validateDTO(dto); err != nil {
		return nil, err
	}

	product.Name = dto.Name
	product.Description = dto.Description
	product.Price = *dto.Price
	product.Category = dto.Category
	product.StockQuantity = *dto.StockQuantity
	product.ImageURL = dto.ImageURL

	if err := s.repo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
		}
		return nil, err
	}

	result := mapToDTO(product)
	s.publishEvent(EventProductUpdated, result)
	return result, nil
}

// DeleteProduct physically removes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w with id: %d", ErrProductNotFound, id)
		}
		return err
	}

	s.publishEvent(EventProductDeleted, map[string]uint{"id": id})
	return nil
}

// validateDTO checks the DTO against the product constraint set and returns
// a ValidationError listing every violated field.
func (s *ProductService) validateDTO(dto *models.ProductDTO) error {
	if err := s.validate.Struct(dto); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Fields: models.ValidationMessages(verrs)}
		}
		return err
	}
	return nil
}

// publishEvent publishes a catalog event best-effort; failures are logged
// and never fail the request.
func (s *ProductService) publishEvent(eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event payload: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

func buildPage(products []models.Product, total int64, page, size int) *models.ProductPage {
	content := make([]models.ProductDTO, 0, len(products))
	for i := range products {
		content = append(content, *mapToDTO(&products[i]))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &models.ProductPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}
}

func mapToDTO(product *models.Product) *models.ProductDTO {
	price := product.Price
	stock := product.StockQuantity
	return &models.ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         &price,
		Category:      product.Category,
		StockQuantity: &stock,
		ImageURL:      product.ImageURL,
	}
}

// mapToEntity drops the DTO's ID; on create the store assigns it.
func mapToEntity(dto *models.ProductDTO) *models.Product {
	return &models.Product{
		Name:          dto.Name,
		Description:   dto.Description,
		Price:         *dto.Price,
		Category:      dto.Category,
		StockQuantity: *dto.StockQuantity,
		ImageURL:      dto.ImageURL,
	}
}
