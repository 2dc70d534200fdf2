// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"belleza/internal/delivery/http/middleware"
	"belleza/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	PaymentHandler *handler.PaymentHandler
	StatsHandler   *handler.StatsHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	paymentHandler *handler.PaymentHandler
	statsHandler   *handler.StatsHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		paymentHandler: params.PaymentHandler,
		statsHandler:   params.StatsHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireAdmin

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Token issuance; the identity arrives pre-verified from upstream sign-in.
	e.POST("/jwt", r.authHandler.IssueToken)

	// Identity routes
	e.POST("/users", r.userHandler.RegisterUser)
	e.GET("/users", r.userHandler.ListUsers, authn, admin)
	e.DELETE("/users/:id", r.userHandler.DeleteUser, authn, admin)
	e.GET("/users/admin/:email", r.userHandler.CheckAdmin, authn)
	e.PATCH("/users/admin/:id", r.userHandler.PromoteToAdmin, authn, admin)

	// Service catalog
	e.GET("/data", r.catalogHandler.ListCatalog)
	e.POST("/addData", r.catalogHandler.AddItem, authn, admin)
	e.DELETE("/deleteData/:id", r.catalogHandler.RemoveItem, authn, admin)

	// Cart
	e.GET("/carts", r.cartHandler.ListCart, authn)
	e.POST("/carts", r.cartHandler.AddToCart)
	e.DELETE("/carts/:id", r.cartHandler.RemoveFromCart)

	// Payments
	e.POST("/create-payment-intent", r.paymentHandler.CreateIntent)
	e.POST("/payments", r.paymentHandler.RecordPayment)
	e.GET("/payments/:email", r.paymentHandler.ListPayments, authn)
	e.PATCH("/update-status/:id", r.paymentHandler.ConfirmPayment, authn, admin)

	// Admin statistics
	e.GET("/admin-stats", r.statsHandler.AdminStats, authn, admin)

	// Reviews
	e.POST("/give-reviews", r.reviewHandler.SubmitReview)
	e.GET("/reviews", r.reviewHandler.ListReviews)
}
