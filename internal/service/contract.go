package service

import (
	"context"

	"github.com/alimikegami/e-commerce/catalog-service/internal/dto"
	pkgdto "github.com/alimikegami/e-commerce/catalog-service/pkg/dto"
	"github.com/segmentio/kafka-go"
)

// CatalogService receives requests the controller has already validated for
// field presence.
type CatalogService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductResponse, err error)
	AddOrder(ctx context.Context, data dto.OrderRequest) (err error)
	GetOrdersByUserID(ctx context.Context, userID string, filter pkgdto.Filter) (data []dto.OrderResponse, err error)
}

// EventWriter is the subset of *kafka.Conn the service publishes through.
type EventWriter interface {
	WriteMessages(msgs ...kafka.Message) (n int, err error)
}
