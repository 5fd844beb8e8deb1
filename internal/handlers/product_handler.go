package handlers

import (
	"errors"

	"loja/internal/models"
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// productShape binds a request body format to a response field-naming convention.
type productShape struct {
	decode func(c *fiber.Ctx) (models.ProductInput, error)
	render func(p models.Product) interface{}
}

// currentShape: {id, nome, descricao, tamanho, preco, quantidade_estoque}.
var currentShape = productShape{
	decode: func(c *fiber.Ctx) (models.ProductInput, error) {
		var in models.ProductInput
		err := parseBody(c, &in)
		return in, err
	},
	render: func(p models.Product) interface{} { return p },
}

// legacyShape: {id, nome, descricao, tamanho, preco_unit, qtd_estoque}.
var legacyShape = productShape{
	decode: func(c *fiber.Ctx) (models.ProductInput, error) {
		var in models.LegacyProductInput
		err := parseBody(c, &in)
		return in.Normalize(), err
	},
	render: func(p models.Product) interface{} { return p.Legacy() },
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the product routes using the current response shape.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	h.register(router.Group("/produtos"), currentShape)
}

// RegisterLegacyRoutes registers the same operations under /v1 with the legacy field names.
func (h *ProductHandler) RegisterLegacyRoutes(router fiber.Router) {
	h.register(router.Group("/v1/produtos"), legacyShape)
}

func (h *ProductHandler) register(productRoutes fiber.Router, shape productShape) {
	productRoutes.Post("/", h.handleCreate(shape))
	productRoutes.Get("/", h.handleGetAll(shape))
	productRoutes.Get("/:id<int>", h.handleGetByID(shape))
	productRoutes.Put("/:id<int>", h.handleUpdate(shape))
	productRoutes.Delete("/:id<int>", h.handleDelete())
}

func (h *ProductHandler) handleCreate(shape productShape) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := shape.decode(c)
		if err != nil {
			return invalidBody(c)
		}

		product, err := h.service.CreateProduct(input)
		if err != nil {
			return h.respondError(c, err, "create product")
		}
		return c.Status(fiber.StatusCreated).JSON(shape.render(*product))
	}
}

func (h *ProductHandler) handleGetAll(shape productShape) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := h.service.GetAllProducts()
		if err != nil {
			return h.respondError(c, err, "list products")
		}
		out := make([]interface{}, 0, len(products))
		for _, p := range products {
			out = append(out, shape.render(p))
		}
		return c.JSON(out)
	}
}

func (h *ProductHandler) handleGetByID(shape productShape) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := productID(c)
		if !ok {
			return notFound(c)
		}
		product, err := h.service.GetProductByID(id)
		if err != nil {
			return h.respondError(c, err, "get product", zap.Uint("product_id", id))
		}
		return c.JSON(shape.render(*product))
	}
}

func (h *ProductHandler) handleUpdate(shape productShape) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := productID(c)
		if !ok {
			return notFound(c)
		}
		input, err := shape.decode(c)
		if err != nil {
			return invalidBody(c)
		}

		product, err := h.service.UpdateProduct(id, input)
		if err != nil {
			return h.respondError(c, err, "update product", zap.Uint("product_id", id))
		}
		return c.JSON(shape.render(*product))
	}
}

func (h *ProductHandler) handleDelete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := productID(c)
		if !ok {
			return notFound(c)
		}
		if err := h.service.DeleteProduct(id); err != nil {
			return h.respondError(c, err, "delete product", zap.Uint("product_id", id))
		}
		return c.JSON(fiber.Map{
			"message": "product deleted successfully",
		})
	}
}

// respondError maps service errors to status codes. Only store failures are logged.
func (h *ProductHandler) respondError(c *fiber.Ctx, err error, op string, fields ...zap.Field) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	case errors.Is(err, models.ErrProductNotFound):
		return notFound(c)
	default:
		h.logger.Error("failed to "+op, append(fields, zap.Error(err))...)
		return internalError(c)
	}
}

// productID reads the :id path parameter. Non-positive IDs can never exist.
func productID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
