package service

import (
	"context"
	"fmt"
	"time"

	"shopdemo/internal/model"
	"shopdemo/internal/repository"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// totalTolerance is the maximum accepted gap between the client-supplied
// total and the total recomputed from catalogue prices.
var totalTolerance = decimal.NewFromFloat(0.01)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	validate    *validatorv10.Validate
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	validate *validatorv10.Validate,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		validate:    validate,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the request, verifies the total where every referenced
// product resolves, and persists the order.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.NewValidationError(model.ErrCodeValidation, "order request is nil")
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("order request validation failed")
		return nil, validationError(err)
	}

	userID, err := primitive.ObjectIDFromHex(req.User)
	if err != nil {
		return nil, model.NewValidationError(model.ErrCodeInvalidID, "invalid user id: %s", req.User)
	}

	productIDs := make([]primitive.ObjectID, 0, len(req.Products))
	for i, raw := range req.Products {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, model.NewValidationError(model.ErrCodeInvalidID, "invalid product id at index %d: %s", i, raw)
		}
		productIDs = append(productIDs, id)
	}

	if err := s.verifyTotal(ctx, productIDs, req.TotalPrice); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		User:       userID,
		Products:   productIDs,
		TotalPrice: req.TotalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID.Hex()).
		Str("user_id", created.User.Hex()).
		Int("product_count", len(created.Products)).
		Float64("total_price", created.TotalPrice).
		Msg("order created")

	return created, nil
}

// verifyTotal recomputes the order total from catalogue prices, one unit per
// products entry, and rejects a client total more than a cent away. The
// check only applies when every referenced product resolves: the store does
// not enforce referential integrity, and an order referencing unknown
// products keeps its client-supplied total.
func (s *orderService) verifyTotal(ctx context.Context, productIDs []primitive.ObjectID, clientTotal float64) error {
	unique := make(map[primitive.ObjectID]struct{}, len(productIDs))
	for _, id := range productIDs {
		unique[id] = struct{}{}
	}

	lookup := make([]primitive.ObjectID, 0, len(unique))
	for id := range unique {
		lookup = append(lookup, id)
	}

	products, err := s.productRepo.GetByIDs(ctx, lookup)
	if err != nil {
		return err
	}

	if len(products) != len(unique) {
		s.logger.Debug().
			Int("requested", len(unique)).
			Int("resolved", len(products)).
			Msg("skipping total verification, unresolved product references")
		return nil
	}

	prices := make(map[primitive.ObjectID]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = decimal.NewFromFloat(p.Price)
	}

	computed := decimal.Zero
	for _, id := range productIDs {
		computed = computed.Add(prices[id])
	}

	diff := computed.Sub(decimal.NewFromFloat(clientTotal)).Abs()
	if diff.GreaterThan(totalTolerance) {
		s.logger.Warn().
			Float64("client_total", clientTotal).
			Str("computed_total", computed.String()).
			Msg("order total mismatch")
		return model.NewValidationError(model.ErrCodeTotalMismatch,
			"totalPrice %.2f does not match product prices (expected %s)",
			clientTotal, computed.StringFixed(2))
	}

	return nil
}

// List retrieves all orders with references expanded. Unresolvable
// references fall back to the bare id.
func (s *orderService) List(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make(map[primitive.ObjectID]struct{})
	productIDs := make(map[primitive.ObjectID]struct{})
	for _, o := range orders {
		userIDs[o.User] = struct{}{}
		for _, p := range o.Products {
			productIDs[p] = struct{}{}
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, keys(userIDs))
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetByIDs(ctx, keys(productIDs))
	if err != nil {
		return nil, err
	}

	usersByID := make(map[primitive.ObjectID]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	productsByID := make(map[primitive.ObjectID]model.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	views := make([]model.OrderView, 0, len(orders))
	for _, o := range orders {
		view := model.OrderView{
			ID:         o.ID,
			User:       expandUser(o.User, usersByID),
			Products:   make([]model.ProductRef, 0, len(o.Products)),
			TotalPrice: o.TotalPrice,
			CreatedAt:  o.CreatedAt,
			UpdatedAt:  o.UpdatedAt,
		}
		for _, p := range o.Products {
			view.Products = append(view.Products, expandProduct(p, productsByID))
		}
		views = append(views, view)
	}

	return views, nil
}

func expandUser(id primitive.ObjectID, users map[primitive.ObjectID]model.User) model.UserRef {
	if u, ok := users[id]; ok {
		return model.ResolvedUser(model.UserSummary{ID: u.ID.Hex(), Email: u.Email})
	}
	return model.UnresolvedUser(id.Hex())
}

func expandProduct(id primitive.ObjectID, products map[primitive.ObjectID]model.Product) model.ProductRef {
	if p, ok := products[id]; ok {
		return model.ResolvedProduct(model.ProductSummary{ID: p.ID.Hex(), Name: p.Name})
	}
	return model.UnresolvedProduct(id.Hex())
}

func keys(set map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// validationError converts validator errors into the domain taxonomy.
func validationError(err error) error {
	if errs, ok := err.(validatorv10.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "objectid":
			return model.NewValidationError(model.ErrCodeInvalidID,
				"%s is not a well-formed object id", fe.Field())
		case "required":
			return model.NewValidationError(model.ErrCodeValidation,
				"%s is required", fe.Field())
		case "gte":
			return model.NewValidationError(model.ErrCodeValidation,
				"%s must be at least %s", fe.Field(), fe.Param())
		}
		return model.NewValidationError(model.ErrCodeValidation,
			"%s failed validation on %s", fe.Field(), fe.Tag())
	}
	return model.NewValidationError(model.ErrCodeValidation, "%s", fmt.Sprint(err))
}
