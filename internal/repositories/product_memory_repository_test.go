package repositories_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func seededRepo(t *testing.T) *repositories.MemoryProductRepository {
	t.Helper()
	repo := repositories.NewMemoryProductRepository()
	products := []models.Product{
		{Name: "iPhone 15", Description: "Latest Apple smartphone", Price: 999.99, Category: "Electronics", StockQuantity: 10, ImageURL: "https://example.com/iphone.jpg"},
		{Name: "Galaxy S24", Description: "Samsung flagship phone", Price: 899.99, Category: "Electronics", StockQuantity: 15, ImageURL: "https://example.com/galaxy.jpg"},
		{Name: "Desk Lamp", Description: "Adjustable LED desk lamp", Price: 35.50, Category: "Home", StockQuantity: 40, ImageURL: "https://example.com/lamp.jpg"},
		{Name: "Coffee Mug", Description: "Ceramic mug, 350ml capacity", Price: 9.99, Category: "Home", StockQuantity: 200, ImageURL: "https://example.com/mug.jpg"},
		{Name: "Headphones", Description: "Over-ear noise cancelling headphones", Price: 199.00, Category: "Electronics", StockQuantity: 25, ImageURL: "https://example.com/headphones.jpg"},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}
	return repo
}

func TestMemoryProductRepository_FindPagedSorted(t *testing.T) {
	repo := seededRepo(t)

	products, total, err := repo.FindPaged(0, 3, "price")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, products, 3)
	assert.Equal(t, "Coffee Mug", products[0].Name)
	assert.Equal(t, "Desk Lamp", products[1].Name)
	assert.Equal(t, "Headphones", products[2].Name)

	// Second page carries the remainder.
	products, total, err = repo.FindPaged(1, 3, "price")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, products, 2)
	assert.Equal(t, "Galaxy S24", products[0].Name)
	assert.Equal(t, "iPhone 15", products[1].Name)
}

func TestMemoryProductRepository_FindPagedOutOfRange(t *testing.T) {
	repo := seededRepo(t)

	products, total, err := repo.FindPaged(7, 5, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, products)
}

func TestMemoryProductRepository_UnknownSortFallsBackToID(t *testing.T) {
	repo := seededRepo(t)

	products, _, err := repo.FindPaged(0, 5, "no-such-field")
	assert.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID, products[i].ID)
	}
}

func TestMemoryProductRepository_SearchByName(t *testing.T) {
	repo := seededRepo(t)

	// Case-insensitive substring match
	products, total, err := repo.SearchByName("PHONE", 0, 10, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"iPhone 15", "Headphones"}, names)

	// Empty keyword matches everything
	_, total, err = repo.SearchByName("", 0, 10, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)

	// No matches is not an error
	products, total, err = repo.SearchByName("zzz", 0, 10, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, products)
}

func TestMemoryProductRepository_FindByCategory(t *testing.T) {
	repo := seededRepo(t)

	_, total, err := repo.FindByCategory("Electronics", 0, 10, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// Exact match is case-sensitive
	_, total, err = repo.FindByCategory("electronics", 0, 10, "id")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestMemoryProductRepository_CRUD(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	p := &models.Product{Name: "Widget", Description: "A very useful widget", Price: 5.00, Category: "Tools", StockQuantity: 3, ImageURL: "https://example.com/widget.jpg"}
	assert.NoError(t, repo.Create(p))
	assert.Equal(t, uint(1), p.ID)

	got, err := repo.FindByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)

	got.StockQuantity = 7
	assert.NoError(t, repo.Update(got))
	got, err = repo.FindByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)

	assert.NoError(t, repo.Delete(1))
	_, err = repo.FindByID(1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(1), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(&models.Product{ID: 1}), repositories.ErrNotFound)

	// IDs are never reused after deletion.
	p2 := &models.Product{Name: "Widget 2", Description: "Another useful widget", Price: 6.00, Category: "Tools", StockQuantity: 2, ImageURL: "https://example.com/widget2.jpg"}
	assert.NoError(t, repo.Create(p2))
	assert.Equal(t, uint(2), p2.ID)
}
