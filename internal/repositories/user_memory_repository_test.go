package repositories_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	user := &models.User{
		Email:    "bob@example.com",
		Password: "$2a$10$unusedhashunusedhashunusedhashun",
		Name:     "Bob",
		Role:     models.RoleUser,
	}
	assert.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail("bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Bob", byID.Name)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	first := &models.User{Email: "carol@example.com", Password: "x", Name: "Carol", Role: models.RoleUser}
	assert.NoError(t, repo.Create(first))

	second := &models.User{Email: "carol@example.com", Password: "y", Name: "Other Carol", Role: models.RoleUser}
	assert.ErrorIs(t, repo.Create(second), repositories.ErrDuplicate)

	// The losing insert must not have claimed an id or replaced the row.
	stored, err := repo.FindByEmail("carol@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Carol", stored.Name)
}
