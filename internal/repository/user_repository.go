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

// userRepository implements the UserRepository interface using MongoDB.
type userRepository struct {
	db     *database.Mongo
	logger zerolog.Logger
}

// NewUserRepository creates a new MongoDB-backed user repository.
func NewUserRepository(db *database.Mongo, logger zerolog.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create inserts a new user and returns it with the assigned id.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	result, err := r.db.Collection(UsersCollection).InsertOne(ctx, user)
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = result.InsertedID.(primitive.ObjectID)

	r.logger.Debug().Str("user_id", user.ID.Hex()).Msg("user created")

	return user, nil
}

// List retrieves all users in store order.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	cursor, err := r.db.Collection(UsersCollection).Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode users")
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a single user by its id.
func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	var user model.User
	err := r.db.Collection(UsersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		r.logger.Error().Err(err).Str("user_id", id.Hex()).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// GetByIDs retrieves the users whose ids appear in ids.
func (r *userRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	if !r.db.IsConnected() {
		return nil, model.ErrStoreUnavailable
	}

	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.db.Collection(UsersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.logger.Error().Err(err).Int("id_count", len(ids)).Msg("failed to query users by ids")
		return nil, fmt.Errorf("failed to query users by ids: %w", err)
	}

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode users")
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}
