// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.Authorize(entity.RoleAdmin)
	customerOnly := r.authMiddleware.Authorize(entity.RoleCustomer)
	rateLimited := r.authRateLimit()

	api := e.Group("/api")

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register, rateLimited...)
		userGroup.POST("/login", r.userHandler.Login, rateLimited...)
		userGroup.GET("/profile", r.userHandler.GetProfile, authenticated)
		userGroup.PUT("/update", r.userHandler.UpdateProfile, authenticated)
		userGroup.DELETE("/delete", r.userHandler.DeleteAccount, authenticated)

		adminGroup := userGroup.Group("/admin", authenticated, adminOnly)
		adminGroup.GET("/profile", r.userHandler.GetProfile)
		adminGroup.GET("/show-customers", r.userHandler.GetAllCustomers)
		adminGroup.GET("/show-all", r.userHandler.GetAllUsers)
	}

	reviewGroup := api.Group("/products/review")
	{
		reviewGroup.GET("/:id", r.reviewHandler.ProductReviews)
		reviewGroup.GET("/:id/ratings", r.reviewHandler.RatingStats)
		reviewGroup.GET("/productReview/:id", r.reviewHandler.GetByID, authenticated)
		reviewGroup.POST("", r.reviewHandler.Create, authenticated)
		reviewGroup.POST("/", r.reviewHandler.Create, authenticated)
		reviewGroup.GET("/customer", r.reviewHandler.MyReviews, authenticated)
		reviewGroup.PUT("/customer/:id", r.reviewHandler.Update, authenticated)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete, authenticated)

		adminGroup := reviewGroup.Group("/admin", authenticated, adminOnly)
		adminGroup.GET("/show-all", r.reviewHandler.AdminShowAll)
		adminGroup.DELETE("/:id", r.reviewHandler.Delete)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("/show-all", r.productHandler.ShowAll)
		productGroup.GET("/:id", r.productHandler.GetByID)

		customerGroup := productGroup.Group("/customer", authenticated, customerOnly)
		customerGroup.GET("/show-all", r.productHandler.ShowAll)
		customerGroup.GET("/:id", r.productHandler.GetByID)

		adminGroup := productGroup.Group("/admin", authenticated, adminOnly)
		adminGroup.GET("/show-all", r.productHandler.AdminShowAll)
		adminGroup.GET("/export", r.productHandler.Export)
		adminGroup.POST("", r.productHandler.Create)
		adminGroup.PUT("/:id", r.productHandler.Update)
		adminGroup.DELETE("/:id", r.productHandler.Delete)
	}

	categoryGroup := api.Group("/category", authenticated)
	{
		categoryGroup.GET("/show-all", r.categoryHandler.ShowAll)
		categoryGroup.GET("/show-all/:id", r.categoryHandler.GetDetails)
		categoryGroup.GET("/admin/show-all", r.categoryHandler.AdminShowAll, adminOnly)
		categoryGroup.POST("", r.categoryHandler.Create, adminOnly)
		categoryGroup.POST("/", r.categoryHandler.Create, adminOnly)
		categoryGroup.PUT("/:id", r.categoryHandler.Update, adminOnly)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, adminOnly)
	}

	cartGroup := api.Group("/cart", authenticated)
	{
		cartGroup.GET("/show-all", r.cartHandler.ShowAll)
		cartGroup.GET("/summary", r.cartHandler.Summary)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.POST("/", r.cartHandler.Add)
		cartGroup.PUT("/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/clear", r.cartHandler.Clear)
		cartGroup.DELETE("/:id", r.cartHandler.Remove)
		cartGroup.GET("/admin/show-all", r.cartHandler.AdminShowAll, adminOnly)
		cartGroup.GET("/admin/analytics", r.cartHandler.Analytics, adminOnly)
	}

	orderGroup := api.Group("/orders", authenticated)
	{
		orderGroup.POST("/customer", r.orderHandler.Create)
		orderGroup.GET("/customer/get", r.orderHandler.MyOrders)
		orderGroup.GET("/customer/:id/qr", r.orderHandler.QRCode)

		adminGroup := orderGroup.Group("/admin", adminOnly)
		adminGroup.GET("", r.orderHandler.AdminShowAll)
		adminGroup.POST("/scan", r.orderHandler.Scan)
		adminGroup.PUT("/:id", r.orderHandler.UpdateStatus)
		adminGroup.DELETE("/:id", r.orderHandler.Delete)
	}
}

// authRateLimit throttles register and login per client IP when configured.
func (r *router) authRateLimit() []echo.MiddlewareFunc {
	if r.config == nil || r.config.HTTP.AuthRateLimit <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStore(rate.Limit(r.config.HTTP.AuthRateLimit))

	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}
