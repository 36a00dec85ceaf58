package repository

import (
	"context"
	"errors"
	"fmt"

	"shopdemo/internal/database"
	"shopdemo/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the ProductRepository interface using MongoDB.
type productRepository struct {
	db     *database.Mongo
	logger zerolog.Logger
}

// NewProductRepository creates a new MongoDB-backed product repository.
func NewProductRepository(db *database.Mongo, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product and returns it with the assigned id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	result, err := r.db.Collection(ProductsCollection).InsertOne(ctx, product)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	product.ID = result.InsertedID.(primitive.ObjectID)

	r.logger.Debug().Str("product_id", product.ID.Hex()).Msg("product created")

	return product, nil
}

// List retrieves all products in store order.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	cursor, err := r.db.Collection(ProductsCollection).Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its id.
func (r *productRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	var product model.Product
	err := r.db.Collection(ProductsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Str("product_id", id.Hex()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &product, nil
}

// GetByIDs retrieves the products whose ids appear in ids. Duplicate ids in
// the input yield a single document in the result.
func (r *productRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.db.Collection(ProductsCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error().Err(err).Int("id_count", len(ids)).Msg("failed to query products by ids")
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}
