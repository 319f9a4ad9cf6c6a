package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/alimikegami/e-commerce/catalog-service/internal/domain"
	"github.com/alimikegami/e-commerce/catalog-service/internal/dto"
	"github.com/alimikegami/e-commerce/catalog-service/internal/repository"
	pkgdto "github.com/alimikegami/e-commerce/catalog-service/pkg/dto"
	"github.com/alimikegami/e-commerce/catalog-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	eventProductCreated = "product_created"
	eventOrderCreated   = "order_created"
)

type CatalogServiceImpl struct {
	mongoDBRepo   repository.CatalogRepository
	kafkaProducer EventWriter
}

func CreateCatalogService(mongoDBRepo repository.CatalogRepository, kafkaProducer EventWriter) CatalogService {
	return &CatalogServiceImpl{mongoDBRepo: mongoDBRepo, kafkaProducer: kafkaProducer}
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (err error) {
	productID, err := s.mongoDBRepo.AddProduct(ctx, domain.Product{
		Name:        *data.Name,
		Description: *data.Description,
		Price:       *data.Price,
		Size:        *data.Size,
	})
	if err != nil {
		return errs.ErrProductNotCreated
	}

	s.publishEvent(ctx, eventProductCreated, dto.ProductResponse{
		ID:          productID.Hex(),
		Name:        *data.Name,
		Description: *data.Description,
		Price:       *data.Price,
		Size:        *data.Size,
	})

	return
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductResponse, err error) {
	products, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	data = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, dto.ProductResponse{
			ID:          product.ID.Hex(),
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Size:        product.Size,
		})
	}

	return data, nil
}

func (s *CatalogServiceImpl) AddOrder(ctx context.Context, data dto.OrderRequest) (err error) {
	productIDs := make([]primitive.ObjectID, 0, len(data.Products))
	for _, rawID := range data.Products {
		productID, parseErr := primitive.ObjectIDFromHex(rawID)
		if parseErr != nil {
			return &errs.InvalidProductIDError{ProductID: rawID}
		}
		productIDs = append(productIDs, productID)
	}

	err = s.ensureProductsExist(ctx, productIDs, data.Products)
	if err != nil {
		return
	}

	orderID, err := s.mongoDBRepo.AddOrder(ctx, domain.Order{
		UserID:   *data.UserID,
		Products: productIDs,
	})
	if err != nil {
		return errs.ErrOrderNotCreated
	}

	s.publishEvent(ctx, eventOrderCreated, dto.OrderResponse{
		ID:       orderID.Hex(),
		UserID:   *data.UserID,
		Products: data.Products,
	})

	return nil
}

func (s *CatalogServiceImpl) GetOrdersByUserID(ctx context.Context, userID string, filter pkgdto.Filter) (data []dto.OrderResponse, err error) {
	orders, err := s.mongoDBRepo.GetOrdersByUserID(ctx, userID, filter)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	data = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		products := make([]string, 0, len(order.Products))
		for _, productID := range order.Products {
			products = append(products, productID.Hex())
		}

		data = append(data, dto.OrderResponse{
			ID:       order.ID.Hex(),
			UserID:   order.UserID,
			Products: products,
		})
	}

	return data, nil
}

// ensureProductsExist resolves every reference in a single lookup and reports
// the first missing one in submission order. The order document is only
// written after this returns nil.
func (s *CatalogServiceImpl) ensureProductsExist(ctx context.Context, productIDs []primitive.ObjectID, rawIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}

	products, err := s.mongoDBRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return errs.ErrInternalServer
	}

	existing := make(map[primitive.ObjectID]struct{}, len(products))
	for _, product := range products {
		existing[product.ID] = struct{}{}
	}

	for i, productID := range productIDs {
		if _, ok := existing[productID]; !ok {
			return &errs.ProductNotFoundError{ProductID: rawIDs[i]}
		}
	}

	return nil
}

// publishEvent announces a completed write; the document is already persisted
// so a broker failure is logged and swallowed.
func (s *CatalogServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
