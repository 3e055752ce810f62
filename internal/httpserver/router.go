package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"watchstore/internal/config"
	"watchstore/internal/domain"
	brandrepo "watchstore/internal/repository/brand"
	cartsvc "watchstore/internal/service/cart"
	ordersvc "watchstore/internal/service/order"
)

// Deps carries the services the router dispatches to.
type Deps struct {
	CatalogSvc catalogService
	CartSvc    cartService
	OrderSvc   orderService
	Admin      config.AdminConfig
}

type catalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListBrands(ctx context.Context) ([]brandrepo.BrandWithCount, error)
}

type cartService interface {
	Upsert(ctx context.Context, in cartsvc.UpsertInput) (*domain.CartLine, bool, error)
	List(ctx context.Context, accountID *int64) ([]domain.CartLine, error)
	Delete(ctx context.Context, id int64) error
	ClearOrdered(ctx context.Context, accountID *int64) (int64, error)
}

type orderService interface {
	Place(ctx context.Context, in ordersvc.PlaceInput) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/brands", brandsListHandler(deps.CatalogSvc))
	router.GET("/products", productsListHandler(deps.CatalogSvc))
	router.GET("/products/:id", productGetHandler(deps.CatalogSvc))

	router.GET("/carts", cartListHandler(deps.CartSvc))
	router.POST("/carts", cartCreateHandler(deps.CartSvc))
	router.POST("/carts/clear_ordered", cartClearOrderedHandler(deps.CartSvc))
	router.DELETE("/carts/:id", cartDeleteHandler(deps.CartSvc))

	router.GET("/orders", ordersListHandler(deps.OrderSvc))
	router.GET("/orders/:id", orderGetHandler(deps.OrderSvc))
	router.POST("/orders", orderCreateHandler(deps.OrderSvc))

	router.GET("/admin/overview", adminOverviewHandler(deps))

	return router
}
