package router

import (
	"net/http"
	"strings"

	"shopdemo/internal/handler"
	"shopdemo/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Liveness endpoint; works with or without a database connection.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("API is running..."))
	})

	registerCollection(mux, "/api/users", collectionHandlers{
		create:  userHandler.Create,
		list:    userHandler.List,
		getByID: userHandler.GetByID,
	})

	registerCollection(mux, "/api/products", collectionHandlers{
		create:  productHandler.Create,
		list:    productHandler.List,
		getByID: productHandler.GetByID,
	})

	registerCollection(mux, "/api/orders", collectionHandlers{
		create: orderHandler.Create,
		list:   orderHandler.List,
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID
	var h http.Handler = mux
	h = middleware.RequestID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

type collectionHandlers struct {
	create  http.HandlerFunc
	list    http.HandlerFunc
	getByID http.HandlerFunc
}

// registerCollection wires the method/path dispatch for one /api/{name}
// collection, with and without trailing slash.
func registerCollection(mux *http.ServeMux, base string, hs collectionHandlers) {
	route := func(w http.ResponseWriter, r *http.Request) {
		atBase := r.URL.Path == base || r.URL.Path == base+"/"

		switch {
		case atBase && r.Method == http.MethodPost && hs.create != nil:
			hs.create(w, r)
		case atBase && r.Method == http.MethodGet && hs.list != nil:
			hs.list(w, r)
		case atBase:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		case strings.HasPrefix(r.URL.Path, base+"/") && r.Method == http.MethodGet && hs.getByID != nil:
			hs.getByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc(base, route)
	mux.HandleFunc(base+"/", route)
}
