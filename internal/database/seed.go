package database

import (
	"fmt"

	"loja/internal/models"
	"loja/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed populates empty product and employee tables with sample data.
func Seed(db *gorm.DB, log *zap.Logger) error {
	products := []models.Product{
		{Nome: "Camiseta Básica", Descricao: strPtr("Algodão 100%"), Tamanho: strPtr("M"), Preco: 49.90, QuantidadeEstoque: 30},
		{Nome: "Calça Jeans", Descricao: strPtr("Corte reto"), Tamanho: strPtr("42"), Preco: 129.90, QuantidadeEstoque: 12},
		{Nome: "Boné", Tamanho: strPtr("U"), Preco: 35.00, QuantidadeEstoque: 50},
	}
	employees := []models.Employee{
		{Nome: "Ana Souza", Cargo: "Gerente", CPF: "111.111.111-11"},
		{Nome: "Bruno Lima", Cargo: "Caixa", CPF: "222.222.222-22"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		productRepo := repositories.NewGORMProductRepository(tx)
		existingProducts, err := productRepo.GetAll()
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}
		if len(existingProducts) == 0 {
			for i := range products {
				if err := productRepo.Create(&products[i]); err != nil {
					return fmt.Errorf("failed to seed products: %w", err)
				}
			}
			log.Info("seeded products", zap.Int("count", len(products)))
		}

		employeeRepo := repositories.NewGORMEmployeeRepository(tx)
		existingEmployees, err := employeeRepo.GetAll()
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		if len(existingEmployees) == 0 {
			for i := range employees {
				if err := employeeRepo.Create(&employees[i]); err != nil {
					return fmt.Errorf("failed to seed employees: %w", err)
				}
			}
			log.Info("seeded employees", zap.Int("count", len(employees)))
		}
		return nil
	})
}
