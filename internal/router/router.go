package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	UpdateVenue(c *ginext.Context)
	DeleteVenue(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	BookVenue(c *ginext.Context)
	DecideBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetVenueBookings(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PUT("/venues/:id", h.UpdateVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)
		api.GET("/venues/:id/availability", h.GetAvailability)
		api.GET("/venues/:id/bookings", h.GetVenueBookings)

		// Bookings
		api.POST("/venues/:id/book", h.BookVenue)
		api.POST("/bookings/:id/decision", h.DecideBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
