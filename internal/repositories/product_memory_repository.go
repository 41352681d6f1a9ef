package repositories

import (
	"sort"
	"strings"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository, used for tests and for running without a database.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// FindPaged returns one page of all products sorted ascending by sortBy.
func (r *MemoryProductRepository) FindPaged(page, size int, sortBy string) ([]models.Product, int64, error) {
	return r.pageOf(func(models.Product) bool { return true }, page, size, sortBy)
}

// SearchByName returns one page of products whose name contains the keyword,
// case-insensitively.
func (r *MemoryProductRepository) SearchByName(keyword string, page, size int, sortBy string) ([]models.Product, int64, error) {
	kw := strings.ToLower(keyword)
	return r.pageOf(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), kw)
	}, page, size, sortBy)
}

// FindByCategory returns one page of products with an exact category match.
func (r *MemoryProductRepository) FindByCategory(category string, page, size int, sortBy string) ([]models.Product, int64, error) {
	return r.pageOf(func(p models.Product) bool {
		return p.Category == category
	}, page, size, sortBy)
}

func (r *MemoryProductRepository) pageOf(match func(models.Product) bool, page, size int, sortBy string) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if match(p) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, sortColumn(sortBy))

	total := int64(len(matched))
	start := page * size
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func sortProducts(products []models.Product, column string) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch column {
		case "name":
			return a.Name < b.Name
		case "description":
			return a.Description < b.Description
		case "price":
			return a.Price < b.Price
		case "category":
			return a.Category < b.Category
		case "stock_quantity":
			return a.StockQuantity < b.StockQuantity
		case "image_url":
			return a.ImageURL < b.ImageURL
		default:
			return a.ID < b.ID
		}
	})
}

// FindByID returns a product by its ID.
func (r *MemoryProductRepository) FindByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Create adds a new product, assigning the next free ID. IDs are never
// reused, even after deletion.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update overwrites an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
