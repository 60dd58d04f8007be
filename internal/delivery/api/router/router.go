// Package router contains routing setup for the API delivery.
package router

import (
	"boothly/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	ProfileHandler      *handler.ProfileHandler
	PortfolioHandler    *handler.PortfolioHandler
	PricingHandler      *handler.PricingHandler
	BookingHandler      *handler.BookingHandler
	AvailabilityHandler *handler.AvailabilityHandler
	LayoutHandler       *handler.LayoutHandler
	PublicPageHandler   *handler.PublicPageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	profileHandler      *handler.ProfileHandler
	portfolioHandler    *handler.PortfolioHandler
	pricingHandler      *handler.PricingHandler
	bookingHandler      *handler.BookingHandler
	availabilityHandler *handler.AvailabilityHandler
	layoutHandler       *handler.LayoutHandler
	publicPageHandler   *handler.PublicPageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		profileHandler:      params.ProfileHandler,
		portfolioHandler:    params.PortfolioHandler,
		pricingHandler:      params.PricingHandler,
		bookingHandler:      params.BookingHandler,
		availabilityHandler: params.AvailabilityHandler,
		layoutHandler:       params.LayoutHandler,
		publicPageHandler:   params.PublicPageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Public booking page, reachable by clients
	bookGroup := e.Group("/book/:username")
	{
		bookGroup.GET("", r.publicPageHandler.GetPage)
		bookGroup.POST("/requests", r.publicPageHandler.RequestBooking)
		bookGroup.GET("/qr", r.publicPageHandler.GetQRCode)
	}

	// Dashboard API v1 routes
	apiV1 := e.Group("/api/v1")

	apiV1.GET("/profile", r.profileHandler.GetProfile)
	apiV1.PATCH("/profile", r.profileHandler.UpdateProfile)
	apiV1.POST("/onboarding/complete", r.profileHandler.CompleteOnboarding)

	portfolioGroup := apiV1.Group("/portfolio")
	{
		portfolioGroup.GET("", r.portfolioHandler.ListImages)
		portfolioGroup.PUT("", r.portfolioHandler.ReplaceImages)
		portfolioGroup.POST("", r.portfolioHandler.AddImage)
		portfolioGroup.DELETE("/:id", r.portfolioHandler.RemoveImage)
	}

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("", r.pricingHandler.ListServices)
		servicesGroup.PUT("", r.pricingHandler.ReplaceServices)
		servicesGroup.POST("", r.pricingHandler.AddService)
		servicesGroup.PUT("/:id", r.pricingHandler.UpdateService)
		servicesGroup.DELETE("/:id", r.pricingHandler.DeleteService)
	}

	bookingsGroup := apiV1.Group("/bookings")
	{
		bookingsGroup.GET("", r.bookingHandler.ListBookings)
		bookingsGroup.PUT("", r.bookingHandler.ReplaceBookings)
		bookingsGroup.POST("", r.bookingHandler.AddBooking)
		bookingsGroup.PATCH("/:id/status", r.bookingHandler.UpdateStatus)
	}

	apiV1.GET("/dashboard", r.bookingHandler.GetDashboard)
	apiV1.GET("/earnings", r.bookingHandler.GetEarnings)

	availabilityGroup := apiV1.Group("/availability")
	{
		availabilityGroup.GET("", r.availabilityHandler.GetAvailability)
		availabilityGroup.PATCH("", r.availabilityHandler.UpdateAvailability)
		availabilityGroup.GET("/slots", r.availabilityHandler.ListSlots)
		availabilityGroup.POST("/weekly/:day/:block/toggle", r.availabilityHandler.ToggleBlock)
		availabilityGroup.POST("/setup", r.availabilityHandler.Setup)
	}

	layoutGroup := apiV1.Group("/layout")
	{
		layoutGroup.GET("", r.layoutHandler.GetLayout)
		layoutGroup.POST("/sidebar/toggle", r.layoutHandler.ToggleSidebar)
		layoutGroup.PUT("/sidebar", r.layoutHandler.SetSidebar)
	}
}
