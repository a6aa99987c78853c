// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"light3d/internal/delivery/http/middleware"
	"light3d/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	ContactHandler    *handler.ContactHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	contactHandler    *handler.ContactHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		contactHandler:    params.ContactHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes are stateless; no session cookie needed
	catalogGroup := e.Group("/products")
	{
		catalogGroup.GET("", r.catalogHandler.ListProducts)
		catalogGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.catalogHandler.ListCategories)
		categoryGroup.GET("/:slug", r.catalogHandler.GetCategory)
	}

	// Cart routes need the session cookie to locate the stored cart
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.Process)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddLine)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveLine)
		cartGroup.PATCH("/items/:itemId/quantity", r.cartHandler.SetQuantity)
		cartGroup.PATCH("/items/:itemId/note", r.cartHandler.SetCustomizationNote)
		cartGroup.PATCH("/items/:itemId/variant", r.cartHandler.SetVariant)
	}

	// Checkout wizard routes share the same session cookie as the cart
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.sessionMiddleware.Process)
	{
		checkoutGroup.GET("", r.checkoutHandler.GetState)
		checkoutGroup.POST("/customer-info", r.checkoutHandler.SubmitCustomerInfo)
		checkoutGroup.POST("/shipping-address", r.checkoutHandler.SubmitShippingAddress)
		checkoutGroup.POST("/back", r.checkoutHandler.GoBack)
		checkoutGroup.POST("/submit", r.checkoutHandler.Submit)
	}

	e.POST("/contact", r.contactHandler.SubmitContactForm)
}
