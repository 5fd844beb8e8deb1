package repositories

import "loja/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	Create(employee *models.Employee) error
}
