package models

import "errors"

// ErrProductNotFound is returned when no product exists with the requested ID.
var ErrProductNotFound = errors.New("product not found")

// Product represents a product in the store.
// Column names keep the original schema; the JSON tags are the current response shape.
type Product struct {
	ID                uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome              string  `json:"nome" gorm:"column:nome;size:100;not null" validate:"required,max=100"`
	Descricao         *string `json:"descricao" gorm:"column:descricao;size:255"`
	Tamanho           *string `json:"tamanho" gorm:"column:tamanho;size:20"`
	Preco             float64 `json:"preco" gorm:"column:preco_unit;not null"`
	QuantidadeEstoque int     `json:"quantidade_estoque" gorm:"column:qtd_estoque;not null"`
}

// TableName overrides the GORM default table name.
func (Product) TableName() string {
	return "produtos"
}

// LegacyProduct is the response shape served by the /api/v1 product routes.
type LegacyProduct struct {
	ID         uint    `json:"id"`
	Nome       string  `json:"nome"`
	Descricao  *string `json:"descricao"`
	Tamanho    *string `json:"tamanho"`
	PrecoUnit  float64 `json:"preco_unit"`
	QtdEstoque int     `json:"qtd_estoque"`
}

// Legacy converts the product to the legacy response shape.
func (p Product) Legacy() LegacyProduct {
	return LegacyProduct{
		ID:         p.ID,
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		Tamanho:    p.Tamanho,
		PrecoUnit:  p.Preco,
		QtdEstoque: p.QuantidadeEstoque,
	}
}

// ProductInput is the create/update request body. Absent keys leave Set false.
// Price and quantity are kept untyped so numeric strings can be coerced.
type ProductInput struct {
	Nome              Optional[string] `json:"nome"`
	Descricao         Optional[string] `json:"descricao"`
	Tamanho           Optional[string] `json:"tamanho"`
	Preco             Optional[any]    `json:"preco"`
	QuantidadeEstoque Optional[any]    `json:"quantidade_estoque"`
}

// LegacyProductInput is the request body accepted by the /api/v1 product routes.
type LegacyProductInput struct {
	Nome       Optional[string] `json:"nome"`
	Descricao  Optional[string] `json:"descricao"`
	Tamanho    Optional[string] `json:"tamanho"`
	PrecoUnit  Optional[any]    `json:"preco_unit"`
	QtdEstoque Optional[any]    `json:"qtd_estoque"`
}

// Normalize maps the legacy field names onto ProductInput.
func (in LegacyProductInput) Normalize() ProductInput {
	return ProductInput{
		Nome:              in.Nome,
		Descricao:         in.Descricao,
		Tamanho:           in.Tamanho,
		Preco:             in.PrecoUnit,
		QuantidadeEstoque: in.QtdEstoque,
	}
}
