package service

import (
	"context"
	"testing"
	"time"

	"shopdemo/internal/model"
	"shopdemo/internal/validation"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) != nil {
		return args.Get(0).(*model.Order), nil
	}
	// Mirror the real repository: echo the order with an assigned id.
	created := *order
	created.ID = primitive.NewObjectID()
	return &created, nil
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func newTestService(orderRepo *MockOrderRepository, userRepo *MockUserRepository, productRepo *MockProductRepository) OrderService {
	return NewOrderService(orderRepo, userRepo, productRepo, validation.New(), zerolog.Nop())
}

func anyIDs() interface{} {
	return mock.MatchedBy(func([]primitive.ObjectID) bool { return true })
}

func TestOrderService_Create_Success(t *testing.T) {
	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return([]model.Product{
		{ID: p1, Name: "Keyboard", Price: 10.5},
		{ID: p2, Name: "Hub", Price: 3},
	}, nil)

	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	// p1 twice (quantity 2) plus p2 once.
	order, err := svc.Create(context.Background(), &model.OrderRequest{
		User:       userID.Hex(),
		Products:   []string{p1.Hex(), p1.Hex(), p2.Hex()},
		TotalPrice: 24,
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, userID, order.User)
	assert.Equal(t, []primitive.ObjectID{p1, p1, p2}, order.Products)
	assert.Equal(t, 24.0, order.TotalPrice)
	assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Minute)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_Create_EmptyProducts(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return(nil, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	order, err := svc.Create(context.Background(), &model.OrderRequest{
		User:       primitive.NewObjectID().Hex(),
		Products:   []string{},
		TotalPrice: 0,
	})

	require.NoError(t, err)
	assert.Empty(t, order.Products)
	assert.Zero(t, order.TotalPrice)
}

func TestOrderService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *model.OrderRequest
	}{
		{
			name: "Nil request",
			req:  nil,
		},
		{
			name: "Malformed user id",
			req: &model.OrderRequest{
				User:       "not-hex",
				TotalPrice: 10,
			},
		},
		{
			name: "Malformed product id",
			req: &model.OrderRequest{
				User:       primitive.NewObjectID().Hex(),
				Products:   []string{"garbage"},
				TotalPrice: 10,
			},
		},
		{
			name: "Negative total",
			req: &model.OrderRequest{
				User:       primitive.NewObjectID().Hex(),
				TotalPrice: -5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(MockOrderRepository)
			userRepo := new(MockUserRepository)
			productRepo := new(MockProductRepository)

			svc := newTestService(orderRepo, userRepo, productRepo)

			_, err := svc.Create(context.Background(), tt.req)

			var ve *model.ValidationError
			require.ErrorAs(t, err, &ve)
			orderRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestOrderService_Create_TotalMismatch(t *testing.T) {
	p1 := primitive.NewObjectID()

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return([]model.Product{
		{ID: p1, Name: "Keyboard", Price: 10.5},
	}, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	_, err := svc.Create(context.Background(), &model.OrderRequest{
		User:       primitive.NewObjectID().Hex(),
		Products:   []string{p1.Hex()},
		TotalPrice: 99,
	})

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, model.ErrCodeTotalMismatch, ve.Code)
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_Create_UnresolvedProductSkipsTotalCheck(t *testing.T) {
	// No referential integrity: unknown product references are stored as-is
	// and the client total is trusted.
	p1 := primitive.NewObjectID()

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return(nil, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	order, err := svc.Create(context.Background(), &model.OrderRequest{
		User:       primitive.NewObjectID().Hex(),
		Products:   []string{p1.Hex()},
		TotalPrice: 123.45,
	})

	require.NoError(t, err)
	assert.Equal(t, 123.45, order.TotalPrice)
}

func TestOrderService_Create_StoreUnavailable(t *testing.T) {
	p1 := primitive.NewObjectID()

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return(nil, model.ErrStoreUnavailable)

	svc := newTestService(orderRepo, userRepo, productRepo)

	_, err := svc.Create(context.Background(), &model.OrderRequest{
		User:       primitive.NewObjectID().Hex(),
		Products:   []string{p1.Hex()},
		TotalPrice: 10,
	})

	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestOrderService_List_Expansion(t *testing.T) {
	userID := primitive.NewObjectID()
	goneUserID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	goneProduct := primitive.NewObjectID()
	now := time.Now().UTC()

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	orderRepo.On("List", mock.Anything).Return([]model.Order{
		{
			ID:         primitive.NewObjectID(),
			User:       userID,
			Products:   []primitive.ObjectID{p1, goneProduct},
			TotalPrice: 13.5,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         primitive.NewObjectID(),
			User:       goneUserID,
			Products:   []primitive.ObjectID{},
			TotalPrice: 0,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}, nil)

	userRepo.On("GetByIDs", mock.Anything, anyIDs()).Return([]model.User{
		{ID: userID, Name: "Ada", Email: "ada@example.com"},
	}, nil)

	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return([]model.Product{
		{ID: p1, Name: "Keyboard", Price: 10.5},
	}, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	first := views[0]
	assert.True(t, first.User.Resolved())
	assert.Equal(t, "ada@example.com", first.User.Display())
	require.Len(t, first.Products, 2)
	assert.True(t, first.Products[0].Resolved())
	assert.Equal(t, "Keyboard", first.Products[0].Display())
	assert.False(t, first.Products[1].Resolved())
	assert.Equal(t, goneProduct.Hex(), first.Products[1].Display())

	second := views[1]
	assert.False(t, second.User.Resolved())
	assert.Equal(t, goneUserID.Hex(), second.User.Display())
	assert.Empty(t, second.Products)
	assert.NotNil(t, second.Products)
}

func TestOrderService_List_Empty(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	orderRepo.On("List", mock.Anything).Return([]model.Order{}, nil)
	userRepo.On("GetByIDs", mock.Anything, anyIDs()).Return(nil, nil)
	productRepo.On("GetByIDs", mock.Anything, anyIDs()).Return(nil, nil)

	svc := newTestService(orderRepo, userRepo, productRepo)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestOrderService_List_StoreUnavailable(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	orderRepo.On("List", mock.Anything).Return(nil, model.ErrStoreUnavailable)

	svc := newTestService(orderRepo, userRepo, productRepo)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}
