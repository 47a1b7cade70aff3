package routes

import (
	"campus_hop/internal/controllers"

	"github.com/gin-gonic/gin"
)

// PublicRoutes serves the read-only browsing surface: routes, the shuttle
// fleet and the map snapshot need no session.
func PublicRoutes(r *gin.Engine, shuttles *controllers.ShuttleController, routeCtl *controllers.RouteController, mapCtl *controllers.MapController) {
	r.GET("/routes", routeCtl.ListRoutes)
	r.GET("/routes/:id", routeCtl.GetRoute)
	r.GET("/shuttles", shuttles.ListShuttles)
	r.GET("/shuttles/:id", shuttles.GetShuttle)
	r.GET("/map/snapshot", mapCtl.Snapshot)
}
