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

// userService implements UserService.
type userService struct {
	repo     repository.UserRepository
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, validate *validatorv10.Validate, logger zerolog.Logger) UserService {
	return &userService{
		repo:     repo,
		validate: validate,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) Create(ctx context.Context, req *model.UserRequest) (*model.User, error) {
	if req == nil {
		return nil, model.NewValidationError(model.ErrCodeValidation, "user request is nil")
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("user request validation failed")
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID.Hex()).Msg("user created")

	return created, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.NewValidationError(model.ErrCodeInvalidID, "invalid user id: %s", id)
	}
	return s.repo.GetByID(ctx, oid)
}
