package repository

import (
	"context"

	"shopdemo/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names in the document store.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user and returns it with the assigned id.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// List retrieves all users in store order.
	List(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user. Returns model.ErrNotFound when the
	// user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)

	// GetByIDs retrieves the users whose ids appear in ids. Missing ids are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and returns it with the assigned id.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// List retrieves all products in store order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product. Returns model.ErrNotFound when the
	// product does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)

	// GetByIDs retrieves the products whose ids appear in ids. Missing ids
	// are simply absent from the result.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order and returns it with the assigned id.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)

	// List retrieves all orders in store order. References are returned as
	// stored; expansion happens in the service layer.
	List(ctx context.Context) ([]model.Order, error)
}
