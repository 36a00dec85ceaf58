package storefront

import (
	"context"

	"shopdemo/internal/cart"
	"shopdemo/internal/model"
)

// State is the order view's loading state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// OrdersAPI is the slice of the API client the order view depends on.
type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]model.OrderView, error)
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error)
}

// View drives the order screen: loading the order list and placing a new
// order built from the local cart. State moves Idle -> Loading ->
// (Loaded | Errored) and is re-entered on every refresh and after a
// successful submit.
type View struct {
	api    OrdersAPI
	state  State
	orders []model.OrderView
	errMsg string
}

// NewView creates an order view in the idle state.
func NewView(api OrdersAPI) *View {
	return &View{api: api, state: StateIdle}
}

// State returns the current loading state.
func (v *View) State() State {
	return v.state
}

// Orders returns the last loaded order list.
func (v *View) Orders() []model.OrderView {
	return v.orders
}

// Err returns the message from the last failed load, empty otherwise.
func (v *View) Err() string {
	return v.errMsg
}

// LoadOrders refreshes the order list from the API. A failure stores the
// extracted message and moves the view to the errored state; it is rendered
// inline in place of the table, never retried automatically.
func (v *View) LoadOrders(ctx context.Context) {
	v.state = StateLoading
	v.errMsg = ""

	orders, err := v.api.ListOrders(ctx)
	if err != nil {
		v.state = StateErrored
		v.errMsg = err.Error()
		return
	}

	v.state = StateLoaded
	v.orders = orders
}

// PlaceResult is the user-facing outcome of a submit attempt. Guard refusals
// and submit failures both surface as a message, mirroring the original's
// blocking alerts; OK is true only when an order was created.
type PlaceResult struct {
	OK      bool
	Message string
}

// Place submits the cart as an order for the given user. It refuses when no
// user id is entered or the cart is empty. On success the cart storage is
// cleared and the order list reloaded.
func (v *View) Place(ctx context.Context, userID string, crt *cart.Cart) PlaceResult {
	if userID == "" {
		return PlaceResult{Message: "Enter a valid user id from your DB"}
	}
	if crt.Empty() {
		return PlaceResult{Message: "Cart is empty"}
	}

	req := model.OrderRequest{
		User:       userID,
		Products:   crt.Flatten(),
		TotalPrice: crt.SubmissionTotal(),
	}

	if _, err := v.api.CreateOrder(ctx, req); err != nil {
		return PlaceResult{Message: err.Error()}
	}

	if err := crt.Clear(); err != nil {
		return PlaceResult{OK: true, Message: "Order placed! (failed to clear cart: " + err.Error() + ")"}
	}

	v.LoadOrders(ctx)

	return PlaceResult{OK: true, Message: "Order placed!"}
}
