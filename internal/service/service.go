package service

import (
	"context"

	"shopdemo/internal/model"
)

// UserService defines operations for user management.
type UserService interface {
	// Create creates a new user.
	Create(ctx context.Context, req *model.UserRequest) (*model.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// Create creates a new product.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create validates the request, verifies the total against catalogue
	// prices where possible, and persists the order.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves all orders with user and product references expanded
	// where the referenced documents still exist.
	List(ctx context.Context) ([]model.OrderView, error)
}
