package routes

import (
	"campus_hop/internal/controllers"
	"campus_hop/internal/middleware"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(r *gin.Engine, bookings *controllers.BookingController) {
	group := r.Group("/bookings")
	group.Use(middleware.RequireAuth())
	{
		group.GET("/slots", bookings.ListSlots)
		group.GET("", bookings.ListMyBookings)
		group.POST("", bookings.CreateBooking)
		group.POST("/:id/cancel", bookings.CancelBooking)
	}
}
