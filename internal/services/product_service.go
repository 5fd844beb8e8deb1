package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// EventPublisher delivers product lifecycle events to a broker.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// GetAllProducts retrieves all products in ascending ID order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the input and persists a new product.
// nome, price and quantity must be present.
func (s *ProductService) CreateProduct(input models.ProductInput) (*models.Product, error) {
	if !input.Nome.Set || !input.Preco.Set || !input.QuantidadeEstoque.Set {
		return nil, &ValidationError{Message: "nome, price and quantity fields are required"}
	}

	product := &models.Product{}
	if err := s.apply(product, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish(models.ProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct overwrites only the fields present in input.
// The read, merge and write run in one repository transaction; nothing is
// written unless every supplied field is valid.
func (s *ProductService) UpdateProduct(id uint, input models.ProductInput) (*models.Product, error) {
	updated, err := s.repo.Update(id, func(p *models.Product) error {
		return s.apply(p, input)
	})
	if err != nil {
		return nil, err
	}

	s.publish(models.ProductUpdated, updated.ID, updated)
	return updated, nil
}

// DeleteProduct hard-deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(models.ProductDeleted, id, nil)
	return nil
}

// apply coerces and validates input against p. p is left untouched on error.
func (s *ProductService) apply(p *models.Product, input models.ProductInput) error {
	next := *p

	if input.Preco.Set {
		preco, err := coerceFloat(input.Preco)
		if err != nil {
			return err
		}
		next.Preco = preco
	}
	if input.QuantidadeEstoque.Set {
		qtd, err := coerceInt(input.QuantidadeEstoque)
		if err != nil {
			return err
		}
		next.QuantidadeEstoque = qtd
	}
	if input.Nome.Set {
		if input.Nome.Null {
			return &ValidationError{Message: "nome cannot be null"}
		}
		next.Nome = input.Nome.Value
	}
	if input.Descricao.Set {
		next.Descricao = input.Descricao.Ptr()
	}
	if input.Tamanho.Set {
		next.Tamanho = input.Tamanho.Ptr()
	}

	if err := s.validate.Struct(next); err != nil {
		return validationFailure(err)
	}

	*p = next
	return nil
}

func (s *ProductService) publish(eventType models.ProductEventType, id uint, product *models.Product) {
	if s.publisher == nil {
		return
	}
	event := models.NewProductEvent(eventType, id, product)
	if err := s.publisher.PublishProductEvent(event); err != nil {
		s.logger.Warn("failed to publish product event",
			zap.String("type", string(eventType)),
			zap.Uint("product_id", id),
			zap.Error(err))
	}
}

// maxExactInt is the largest integer a float64 holds without rounding.
const maxExactInt = 1 << 53

// coerceInt truncates JSON numbers toward zero. Strings are read as base-10
// decimals and must hold a whole number ("2.0" is accepted, "2.5" is not).
func coerceInt(o models.Optional[any]) (int, error) {
	f, err := coerceFloat(o)
	if err != nil {
		return 0, err
	}
	if _, isString := o.Value.(string); isString && f != math.Trunc(f) {
		return 0, errNumericFields()
	}
	f = math.Trunc(f)
	if math.Abs(f) > maxExactInt {
		return 0, errNumericFields()
	}
	return int(f), nil
}

// coerceFloat accepts JSON numbers and numeric strings. Strings are parsed as
// decimal floats, so leading zeros never switch the base and hex floats
// ("0x1p4") are refused.
func coerceFloat(o models.Optional[any]) (float64, error) {
	if o.Null {
		return 0, errNumericFields()
	}
	if _, ok := o.Value.(bool); ok {
		return 0, errNumericFields()
	}
	v := o.Value
	if str, ok := v.(string); ok {
		if strings.ContainsAny(str, "xX") {
			return 0, errNumericFields()
		}
		v = strings.TrimSpace(str)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNumericFields()
	}
	return f, nil
}

func validationFailure(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Message: err.Error()}
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}
	return &ValidationError{Message: strings.Join(messages, "; ")}
}
