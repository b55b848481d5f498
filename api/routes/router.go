package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modastore/modastore-backend/api/controllers"
	"github.com/modastore/modastore-backend/api/middleware"
	"github.com/modastore/modastore-backend/internal/auth"
	"github.com/modastore/modastore-backend/internal/cart"
	"github.com/modastore/modastore-backend/internal/catalog"
	"github.com/modastore/modastore-backend/internal/reports"
	"github.com/modastore/modastore-backend/internal/sales"
	"github.com/modastore/modastore-backend/pkg/config"
	"github.com/modastore/modastore-backend/pkg/db"
	"github.com/modastore/modastore-backend/pkg/logger"
	"github.com/modastore/modastore-backend/pkg/metrics"
	"github.com/modastore/modastore-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	authService auth.Service,
	catalogService catalog.Service,
	cartService cart.Service,
	salesService sales.Service,
	reportsService reports.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbClient, redisClient))
	})

	if registry != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(authService, logg))
	})

	// Public storefront reads.
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/categories", controllers.ListCategories(catalogService, logg))
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/{productId}", controllers.GetProduct(catalogService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/", controllers.CartAdd(cartService, logg))
			r.Delete("/{itemId}", controllers.CartRemove(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(salesService, logg))

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(salesService, logg))
			r.Get("/{saleId}", controllers.GetSale(salesService, logg))
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Use(middleware.RequireRole("vendor", logg))

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", controllers.VendorCreateCategory(catalogService, logg))
				r.Put("/{categoryId}", controllers.VendorUpdateCategory(catalogService, logg))
				r.Delete("/{categoryId}", controllers.VendorDeleteCategory(catalogService, logg))
			})

			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.VendorCreateProduct(catalogService, logg))
				r.Patch("/{productId}", controllers.VendorUpdateProduct(catalogService, logg))
				r.Delete("/{productId}", controllers.VendorDeleteProduct(catalogService, logg))
				r.Get("/search", controllers.VendorSearchProducts(catalogService, logg))
			})

			r.Post("/sales", controllers.FinalizeSale(salesService, logg))

			r.Route("/reports", func(r chi.Router) {
				r.Get("/inventory", controllers.VendorInventoryValuation(reportsService, logg))
				r.Get("/sales", controllers.VendorSalesSummary(reportsService, logg))
			})
		})
	})

	return r
}
