package repositories

import (
	"fmt"
	"sort"
	"sync"

	"loja/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// IDs are assigned sequentially starting at 1 and never reused.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products in ascending ID order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, cloneProduct(p))
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrProductNotFound)
	}
	product = cloneProduct(product)
	return &product, nil
}

// Create adds a new product and assigns its ID.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

// Update applies a change to an existing product while holding the write lock.
func (r *MockProductRepository) Update(id uint, apply func(product *models.Product) error) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrProductNotFound)
	}
	product := cloneProduct(stored)
	if err := apply(&product); err != nil {
		return nil, err
	}
	product.ID = id
	r.products[id] = cloneProduct(product)
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, models.ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// cloneProduct copies the optional string fields so callers cannot mutate stored state.
func cloneProduct(p models.Product) models.Product {
	if p.Descricao != nil {
		d := *p.Descricao
		p.Descricao = &d
	}
	if p.Tamanho != nil {
		t := *p.Tamanho
		p.Tamanho = &t
	}
	return p
}
