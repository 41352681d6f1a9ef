package repositories

import (
	"errors"

	"catalog/internal/models"
)

// Shared repository errors. Services translate them into their own error
// taxonomy.
var (
	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, such as the user email index.
	ErrDuplicate = errors.New("duplicate record")
)

// ProductRepository defines the interface for product data access.
// Paged reads return the matching slice plus the total match count, sorted
// ascending by sortBy.
type ProductRepository interface {
	FindPaged(page, size int, sortBy string) ([]models.Product, int64, error)
	SearchByName(keyword string, page, size int, sortBy string) ([]models.Product, int64, error)
	FindByCategory(category string, page, size int, sortBy string) ([]models.Product, int64, error)
	FindByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}

// productSortColumns whitelists the sortable columns. Caller input is mapped
// through it and never interpolated into a query directly.
var productSortColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"description":   "description",
	"price":         "price",
	"category":      "category",
	"stockQuantity": "stock_quantity",
	"imageUrl":      "image_url",
}

// sortColumn resolves a requested sort field to a column name. Unknown
// fields fall back to id.
func sortColumn(sortBy string) string {
	if col, ok := productSortColumns[sortBy]; ok {
		return col
	}
	return "id"
}
