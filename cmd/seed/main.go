// Command seed inserts sample users and products so the demo has data to
// work with. Unlike the API server it requires a reachable database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopdemo/internal/config"
	"shopdemo/internal/database"
	"shopdemo/internal/model"
	"shopdemo/internal/repository"
)

var sampleUsers = []model.UserRequest{
	{Name: "Ada Lovelace", Email: "ada@example.com"},
	{Name: "Grace Hopper", Email: "grace@example.com"},
}

var sampleProducts = []model.ProductRequest{
	{Name: "Mechanical Keyboard", Price: 89.99, Category: "accessories"},
	{Name: "USB-C Hub", Price: 34.50, Category: "accessories"},
	{Name: "Laptop Stand", Price: 42.00, Category: "office"},
	{Name: "Webcam", Price: 59.95, Category: "video"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.Connect(ctx, cfg.Mongo, logger)
	if !db.IsConnected() {
		return fmt.Errorf("seeding requires a reachable database, check MONGO_URI")
	}
	defer db.Close(context.Background())

	userRepo := repository.NewUserRepository(db, logger)
	productRepo := repository.NewProductRepository(db, logger)

	now := time.Now().UTC()

	for _, u := range sampleUsers {
		created, err := userRepo.Create(ctx, &model.User{
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		fmt.Printf("user    %s  %s\n", created.ID.Hex(), created.Email)
	}

	for _, p := range sampleProducts {
		created, err := productRepo.Create(ctx, &model.Product{
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		fmt.Printf("product %s  %s ($%.2f)\n", created.ID.Hex(), created.Name, created.Price)
	}

	return nil
}
