package repositories

import (
	"errors"
	"fmt"
	"strings"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindPaged retrieves one page of products sorted ascending by sortBy.
func (r *GORMProductRepository) FindPaged(page, size int, sortBy string) ([]models.Product, int64, error) {
	return r.findPage(r.db.Model(&models.Product{}), page, size, sortBy)
}

// SearchByName retrieves one page of products whose name contains the keyword,
// case-insensitively. An empty keyword matches everything.
func (r *GORMProductRepository) SearchByName(keyword string, page, size int, sortBy string) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	return r.findPage(query, page, size, sortBy)
}

// FindByCategory retrieves one page of products with an exact category match.
func (r *GORMProductRepository) FindByCategory(category string, page, size int, sortBy string) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Where("category = ?", category)
	return r.findPage(query, page, size, sortBy)
}

// findPage runs the shared count-then-select pagination over a prepared query.
func (r *GORMProductRepository) findPage(query *gorm.DB, page, size int, sortBy string) ([]models.Product, int64, error) {
	// New session so the query is safe to reuse for both finishers.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Order(sortColumn(sortBy) + " ASC").
		Limit(size).
		Offset(page * size).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product; the database assigns the ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites all fields of an existing product.
// An explicit update is used instead of Save: Save falls back to inserting
// when no row matches, which would resurrect a deleted id.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("*").
		Updates(product) // Select("*") updates every field, zero values included
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by its ID. The delete is physical.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
