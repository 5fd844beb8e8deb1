package repositories

import (
	"fmt"

	"loja/internal/models"

	"gorm.io/gorm"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		db: db,
	}
}

// GetAll retrieves every employee ordered by ID.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := r.db.Order("id asc").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// Create inserts a new employee.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}
