package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSpaces(c *ginext.Context)
	GetSpace(c *ginext.Context)
	CreateSpace(c *ginext.Context)
	UpdateSpace(c *ginext.Context)
	DeleteSpace(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
}

// InitRouter builds the route table. auth resolves the actor from the
// request, adminOnly additionally requires the admin role; space reads stay
// public.
func InitRouter(mode string, h Handler, auth, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/v1")
	{
		// Coworkingspaces
		api.GET("/coworkingspaces", h.ListSpaces)
		api.GET("/coworkingspaces/:id", h.GetSpace)
		api.POST("/coworkingspaces", auth, adminOnly, h.CreateSpace)
		api.PUT("/coworkingspaces/:id", auth, adminOnly, h.UpdateSpace)
		api.DELETE("/coworkingspaces/:id", auth, adminOnly, h.DeleteSpace)

		// Bookings nested under a space
		api.GET("/coworkingspaces/:id/bookings", auth, h.ListBookings)
		api.POST("/coworkingspaces/:id/bookings", auth, h.CreateBooking)

		// Bookings
		api.GET("/bookings", auth, h.ListBookings)
		api.GET("/bookings/:id", auth, h.GetBooking)
		api.PUT("/bookings/:id", auth, h.UpdateBooking)
		api.DELETE("/bookings/:id", auth, h.DeleteBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
