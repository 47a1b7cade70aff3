package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"campus_hop/internal/controllers"
	"campus_hop/internal/middleware"
	"campus_hop/internal/store"
)

// SetupRouter wires every route group around the shared store.
func SetupRouter(s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	// Every request log line carries the correlation ID set above.
	r.Use(ginlog.SetLogger(ginlog.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
		return l.With().Str("request_id", middleware.GetRequestID(c)).Logger()
	})))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := controllers.NewAuthController(s)
	shuttles := controllers.NewShuttleController(s)
	routeCtl := controllers.NewRouteController(s)
	bookings := controllers.NewBookingController(s)
	mapCtl := controllers.NewMapController(s)
	admin := controllers.NewAdminController(s)
	ws := controllers.NewWebSocketController(s)

	AuthRoutes(r, auth)
	PublicRoutes(r, shuttles, routeCtl, mapCtl)
	BookingRoutes(r, bookings)
	AdminRoutes(r, auth, shuttles, routeCtl, bookings, admin)
	WebSocketRoutes(r, ws)

	return r
}
