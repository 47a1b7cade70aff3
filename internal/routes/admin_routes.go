package routes

import (
	"campus_hop/internal/controllers"
	"campus_hop/internal/middleware"
	"campus_hop/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine, auth *controllers.AuthController, shuttles *controllers.ShuttleController, routeCtl *controllers.RouteController, bookings *controllers.BookingController, admin *controllers.AdminController) {
	group := r.Group("/admin")
	group.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		group.GET("/overview", admin.Overview)

		group.GET("/shuttles", shuttles.ListShuttles)
		group.POST("/shuttles", shuttles.CreateShuttle)
		group.PUT("/shuttles/:id", shuttles.UpdateShuttle)
		group.DELETE("/shuttles/:id", shuttles.DeleteShuttle)

		group.GET("/routes", routeCtl.ListRoutes)
		group.POST("/routes", routeCtl.CreateRoute)
		group.PUT("/routes/:id", routeCtl.UpdateRoute)
		group.DELETE("/routes/:id", routeCtl.DeleteRoute)

		group.GET("/bookings", bookings.ListAllBookings)
		group.PATCH("/bookings/:id/status", bookings.UpdateBookingStatus)

		group.GET("/users", auth.ListUsers)
	}
}
