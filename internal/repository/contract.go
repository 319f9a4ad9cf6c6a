package repository

import (
	"context"

	"github.com/alimikegami/e-commerce/catalog-service/internal/domain"
	pkgdto "github.com/alimikegami/e-commerce/catalog-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error)
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrdersByUserID(ctx context.Context, userID string, param pkgdto.Filter) (data []domain.Order, err error)
}
