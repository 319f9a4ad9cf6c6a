package repository

import (
	"context"
	"fmt"
	"regexp"

	"github.com/alimikegami/e-commerce/catalog-service/internal/domain"
	pkgdto "github.com/alimikegami/e-commerce/catalog-service/pkg/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection = "products"
	ordersCollection   = "orders"
)

type MongoDBCatalogRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) CatalogRepository {
	return &MongoDBCatalogRepositoryImpl{db: db}
}

func (r *MongoDBCatalogRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return insertedObjectID(ctx, "AddProduct", result)
}

// buildProductFilter assembles the products query. Name is a case-insensitive
// substring match; the input is escaped so regex metacharacters are matched
// literally. Size matches exactly.
func buildProductFilter(param pkgdto.Filter) bson.M {
	filter := bson.M{}
	if param.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(param.Name), Options: "i"}
	}
	if param.Size != "" {
		filter["size"] = param.Size
	}

	return filter
}

func (r *MongoDBCatalogRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	findOptions := options.Find().SetSkip(param.OffsetValue()).SetLimit(param.LimitValue())

	cursor, err := r.db.Collection(productsCollection).Find(ctx, buildProductFilter(param), findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCatalogRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}

	cursor, err := r.db.Collection(productsCollection).Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCatalogRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(ordersCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return insertedObjectID(ctx, "AddOrder", result)
}

func (r *MongoDBCatalogRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID string, param pkgdto.Filter) (data []domain.Order, err error) {
	filter := bson.M{"user_id": userID}

	findOptions := options.Find().SetSkip(param.OffsetValue()).SetLimit(param.LimitValue())

	cursor, err := r.db.Collection(ordersCollection).Find(ctx, filter, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	return data, nil
}

// insertedObjectID treats an insert acknowledged without an object id as a
// failed write.
func insertedObjectID(ctx context.Context, component string, result *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		err := fmt.Errorf("insert did not return an object id, got %T", result.InsertedID)
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return primitive.NilObjectID, err
	}

	return id, nil
}
