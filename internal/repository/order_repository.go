package repository

import (
	"context"
	"fmt"

	"shopdemo/internal/database"
	"shopdemo/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderRepository implements the OrderRepository interface using MongoDB.
type orderRepository struct {
	db     *database.Mongo
	logger zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *database.Mongo, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order and returns it with the assigned id. One write,
// no transaction; concurrent identical requests produce independent orders.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	result, err := r.db.Collection(OrdersCollection).InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", order.User.Hex()).
			Int("product_count", len(order.Products)).
			Msg("failed to insert order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	order.ID = result.InsertedID.(primitive.ObjectID)

	r.logger.Debug().
		Str("order_id", order.ID.Hex()).
		Int("product_count", len(order.Products)).
		Msg("order created")

	return order, nil
}

// List retrieves all orders in store order.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	cursor, err := r.db.Collection(OrdersCollection).Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := make([]model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
