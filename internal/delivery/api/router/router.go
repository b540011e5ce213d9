// Package router wires the HTTP handlers to their routes.
package router

import (
	"warehouse/internal/delivery/api/middleware"
	"warehouse/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler      *handler.HealthHandler
	AuthHandler        *handler.AuthHandler
	SessionHandler     *handler.SessionHandler
	ProductHandler     *handler.ProductHandler
	TransactionHandler *handler.TransactionHandler
	WarehouseHandler   *handler.WarehouseHandler
	ReportHandler      *handler.ReportHandler
	UserHandler        *handler.UserHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/logout", r.AuthHandler.Logout, r.AuthMiddleware.Authenticate)
	}

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.AuthMiddleware.Authenticate)

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.SessionHandler.Get)
		sessionGroup.PUT("/page", r.SessionHandler.SetPage)
	}

	apiV1.GET("/dashboard", r.ReportHandler.Dashboard)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.ProductHandler.List)
		productsGroup.POST("", r.ProductHandler.Create)
		productsGroup.GET("/low-stock", r.ProductHandler.LowStock)
		productsGroup.GET("/:id", r.ProductHandler.Get)
		productsGroup.PUT("/:id", r.ProductHandler.Update)
		productsGroup.DELETE("/:id", r.ProductHandler.Delete)
	}

	transactionsGroup := apiV1.Group("/transactions")
	{
		transactionsGroup.GET("", r.TransactionHandler.List)
		transactionsGroup.POST("", r.TransactionHandler.Create)
		transactionsGroup.GET("/recent", r.TransactionHandler.Recent)
		transactionsGroup.GET("/:id", r.TransactionHandler.Get)
	}

	warehousesGroup := apiV1.Group("/warehouses")
	{
		warehousesGroup.GET("", r.WarehouseHandler.List)
		warehousesGroup.POST("", r.WarehouseHandler.Create)
		warehousesGroup.GET("/:id", r.WarehouseHandler.Get)
		warehousesGroup.PUT("/:id", r.WarehouseHandler.Update)
		warehousesGroup.DELETE("/:id", r.WarehouseHandler.Delete)
		warehousesGroup.GET("/:id/report", r.WarehouseHandler.Report)
	}

	apiV1.GET("/reports/valuation", r.ReportHandler.Valuation)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.UserHandler.List)
		usersGroup.GET("/:id", r.UserHandler.Get)
	}

	apiV1.POST("/admin/seed", r.AdminHandler.Seed)
}
