package repositories

import (
	"loja/internal/models"
)

// ProductRepository defines the interface for product data access.
// Implementations return errors wrapping models.ErrProductNotFound for unknown IDs.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// Update loads the product, lets apply modify it and saves the result atomically.
	// An error from apply aborts the update and is returned unchanged.
	Update(id uint, apply func(product *models.Product) error) (*models.Product, error)
	Delete(id uint) error
}
