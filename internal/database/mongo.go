package database

import (
	"context"
	"time"

	"shopdemo/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Mongo is the process-scoped database handle. A failed or absent connection
// is a valid state: IsConnected reports false and every repository call is
// expected to check it before attempting I/O.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger zerolog.Logger
}

// Connect attempts a single connection to MongoDB. It never fails the caller:
// when the URI is absent or the server is unreachable it logs a warning and
// returns a disconnected handle.
func Connect(ctx context.Context, cfg config.MongoConfig, logger zerolog.Logger) *Mongo {
	m := &Mongo{logger: logger.With().Str("component", "database").Logger()}

	if cfg.URI == "" {
		m.logger.Warn().Msg("MONGO_URI not defined, running without database")
		return m
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		m.logger.Warn().Err(err).Msg("mongodb connection failed, running without database")
		return m
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		m.logger.Warn().Err(err).Msg("mongodb ping failed, running without database")
		return m
	}

	m.client = client
	m.db = client.Database(cfg.Database)
	m.logger.Info().Str("database", cfg.Database).Msg("mongodb connected")

	return m
}

// Disconnected returns a handle with no connection, for exercising the
// database-less mode.
func Disconnected(logger zerolog.Logger) *Mongo {
	return &Mongo{logger: logger.With().Str("component", "database").Logger()}
}

// IsConnected reports whether a usable connection was established.
func (m *Mongo) IsConnected() bool {
	return m.client != nil
}

// Collection returns a handle to the named collection. Callers must check
// IsConnected first.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close tears down the connection if one was established.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
