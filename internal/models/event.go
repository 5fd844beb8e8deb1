package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductEventType names a product lifecycle change.
type ProductEventType string

const (
	ProductCreated ProductEventType = "product.created"
	ProductUpdated ProductEventType = "product.updated"
	ProductDeleted ProductEventType = "product.deleted"
)

// ProductEvent is the message published after a successful product write.
type ProductEvent struct {
	EventID    string           `json:"event_id"`
	Type       ProductEventType `json:"type"`
	ProductID  uint             `json:"product_id"`
	OccurredAt time.Time        `json:"occurred_at"`
	Product    *Product         `json:"product,omitempty"` // nil for deletions
}

// NewProductEvent stamps a new event with a random ID and the current time.
func NewProductEvent(eventType ProductEventType, productID uint, product *Product) ProductEvent {
	return ProductEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
		Product:    product,
	}
}
