// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	OrderHandler    *handler.OrderHandler
	CatalogHandler  *handler.CatalogHandler
	ReviewHandler   *handler.ReviewHandler
	RedeemHandler   *handler.RedeemHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	orderHandler    *handler.OrderHandler
	catalogHandler  *handler.CatalogHandler
	reviewHandler   *handler.ReviewHandler
	redeemHandler   *handler.RedeemHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		orderHandler:    params.OrderHandler,
		catalogHandler:  params.CatalogHandler,
		reviewHandler:   params.ReviewHandler,
		redeemHandler:   params.RedeemHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Realtime order events
	e.GET("/ws", r.realtimeHandler.Subscribe)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.GET("/check-username", r.authHandler.CheckUsername)
		authGroup.POST("/external-callback", r.authHandler.ExternalCallback)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.GET("/google/login", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	userGroup := e.Group("/user", authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	ordersGroup := e.Group("/orders", authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:orderId/status", r.orderHandler.SetOrderStatus, requireAdmin)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/check-title", r.catalogHandler.CheckTitle)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	reviewsGroup := e.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.POST("", r.reviewHandler.CreateReview, authenticate)
	}

	// Back-office routes require the admin role
	adminGroup := e.Group("/admin", authenticate, requireAdmin)
	{
		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PATCH("/orders/:orderId/status", r.orderHandler.SetOrderStatus)

		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.GET("/users/:id", r.userHandler.GetUser)
		adminGroup.PUT("/users/:id", r.userHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.userHandler.DeleteUser)
		adminGroup.PUT("/users/:id/points", r.userHandler.SetRewardPoints)

		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.POST("/uploads", r.catalogHandler.UploadImage)

		adminGroup.GET("/redeem-codes", r.redeemHandler.ListCodes)
		adminGroup.POST("/redeem-codes", r.redeemHandler.GenerateCodes)
		adminGroup.POST("/redeem-codes/:code/assign", r.redeemHandler.AssignCode)
	}
}
