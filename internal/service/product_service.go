package service

import (
	"context"
	"time"

	"shopdemo/internal/model"
	"shopdemo/internal/repository"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// productService implements ProductService.
type productService struct {
	repo     repository.ProductRepository
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, validate *validatorv10.Validate, logger zerolog.Logger) ProductService {
	return &productService{
		repo:     repo,
		validate: validate,
		logger:   logger.With().Str("service", "product").Logger(),
	}
}

func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewValidationError(model.ErrCodeValidation, "product request is nil")
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("product request validation failed")
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	product := &model.Product{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID.Hex()).Msg("product created")

	return created, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.NewValidationError(model.ErrCodeInvalidID, "invalid product id: %s", id)
	}
	return s.repo.GetByID(ctx, oid)
}
